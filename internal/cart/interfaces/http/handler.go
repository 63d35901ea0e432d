// Package http 提供购物车的 HTTP 接口
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/wyfcoding/voguevault/internal/catalog/application"
	"github.com/wyfcoding/voguevault/internal/cart/application"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/pkg/metrics"
	"github.com/wyfcoding/voguevault/pkg/response"
)

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	service *application.CartService
	catalog *catalogapp.CatalogQueryService
	metrics *metrics.Metrics
}

// NewCartHandler 创建处理器实例，metrics 可为 nil
func NewCartHandler(service *application.CartService, catalog *catalogapp.CatalogQueryService, m *metrics.Metrics) *CartHandler {
	return &CartHandler{service: service, catalog: catalog, metrics: m}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/api/v1/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items", h.UpdateQuantity)
		cart.DELETE("/items", h.RemoveItem)
		cart.DELETE("", h.ClearCart)
	}
}

// GetCart 返回购物车当前内容、总金额与单件总数
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	response.Success(c, gin.H{
		"items": h.service.Items(ctx),
		"total": h.service.Total(ctx),
		"count": h.service.Count(ctx),
	})
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	// 省略时默认为 1
	Quantity int `json:"quantity"`
}

// AddItem 把商品加入购物车，同规格合并数量
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request.Context()
	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if errors.Is(err, errs.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.service.AddItem(ctx, product, req.Size, req.Color, req.Quantity); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.CartItemsAddedTotal.Add(float64(req.Quantity))
	}
	response.Success(c, gin.H{
		"items": h.service.Items(ctx),
		"total": h.service.Total(ctx),
		"count": h.service.Count(ctx),
	})
}

// UpdateQuantityRequest 修改数量请求
type UpdateQuantityRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantity 设置行项数量，小于等于零等价于删除
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	h.service.UpdateQuantity(ctx, req.ProductID, req.Size, req.Color, req.Quantity)
	response.Success(c, gin.H{
		"items": h.service.Items(ctx),
		"total": h.service.Total(ctx),
		"count": h.service.Count(ctx),
	})
}

// RemoveItem 删除行项，规格由查询参数指定
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var query struct {
		ProductID uint   `form:"productId" binding:"required"`
		Size      string `form:"size"`
		Color     string `form:"color"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	h.service.RemoveItem(ctx, query.ProductID, query.Size, query.Color)
	response.Success(c, gin.H{
		"items": h.service.Items(ctx),
		"total": h.service.Total(ctx),
		"count": h.service.Count(ctx),
	})
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.service.Clear(c.Request.Context())
	response.Success(c, nil)
}
