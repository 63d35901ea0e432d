// Package http 提供心愿单的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/wyfcoding/voguevault/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/voguevault/internal/catalog/domain"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/wishlist/application"
	"github.com/wyfcoding/voguevault/pkg/response"
)

// WishlistHandler 心愿单 HTTP 处理器
type WishlistHandler struct {
	service *application.WishlistService
	catalog *catalogapp.CatalogQueryService
}

// NewWishlistHandler 创建处理器实例
func NewWishlistHandler(service *application.WishlistService, catalog *catalogapp.CatalogQueryService) *WishlistHandler {
	return &WishlistHandler{service: service, catalog: catalog}
}

// RegisterRoutes 注册路由
func (h *WishlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	wishlist := router.Group("/api/v1/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/:productId/toggle", h.Toggle)
		wishlist.DELETE("/:productId", h.Remove)
	}
}

// GetWishlist 按加入顺序返回心愿单中的商品。
// 目录中已不存在的 ID 会被跳过，但保留在心愿单中。
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	ctx := c.Request.Context()

	products := make([]*catalogdomain.Product, 0)
	for _, id := range h.service.IDs(ctx) {
		product, err := h.catalog.GetProduct(ctx, id)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		products = append(products, product)
	}
	response.Success(c, products)
}

// Toggle 翻转商品的心愿单成员状态
func (h *WishlistHandler) Toggle(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	in := h.service.Toggle(c.Request.Context(), id)
	response.Success(c, gin.H{"productId": id, "inWishlist": in})
}

// Remove 把商品移出心愿单，不存在时同样成功
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	h.service.Remove(c.Request.Context(), id)
	response.Success(c, nil)
}

func (h *WishlistHandler) productID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return uint(id), true
}
