// Package http 提供商品目录的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/voguevault/internal/catalog/application"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/pkg/response"
)

// CatalogHandler 商品目录 HTTP 处理器
type CatalogHandler struct {
	query *application.CatalogQueryService
}

// NewCatalogHandler 创建处理器实例
func NewCatalogHandler(query *application.CatalogQueryService) *CatalogHandler {
	return &CatalogHandler{query: query}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/products")
	{
		api.GET("", h.ListProducts)
		api.GET("/featured", h.Featured)
		api.GET("/trending", h.Trending)
		api.GET("/search", h.Search)
		api.GET("/:id", h.GetProduct)
	}
}

// ListProducts 返回全部商品；携带 category 查询参数时按分类精确过滤
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if category := c.Query("category"); category != "" {
		products, err := h.query.ListByCategory(ctx, category)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		response.Success(c, products)
		return
	}

	products, err := h.query.ListProducts(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, products)
}

// GetProduct 返回商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.query.GetProduct(c.Request.Context(), uint(id))
	if errors.Is(err, errs.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, product)
}

// Featured 返回精选商品
func (h *CatalogHandler) Featured(c *gin.Context) {
	products, err := h.query.ListFeatured(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, products)
}

// Trending 返回热门商品
func (h *CatalogHandler) Trending(c *gin.Context) {
	products, err := h.query.ListTrending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, products)
}

// Search 按关键词检索商品
func (h *CatalogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "query parameter q is required")
		return
	}

	products, err := h.query.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, products)
}
