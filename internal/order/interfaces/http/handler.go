// Package http 提供订单与结算的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	cartapp "github.com/wyfcoding/voguevault/internal/cart/application"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/order/application"
	"github.com/wyfcoding/voguevault/internal/order/domain"
	"github.com/wyfcoding/voguevault/pkg/metrics"
	"github.com/wyfcoding/voguevault/pkg/response"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	service *application.OrderService
	cart    *cartapp.CartService
	metrics *metrics.Metrics
}

// NewOrderHandler 创建处理器实例，metrics 可为 nil
func NewOrderHandler(service *application.OrderService, cart *cartapp.CartService, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{service: service, cart: cart, metrics: m}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/v1/orders")
	{
		orders.POST("", h.Checkout)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// CheckoutRequest 结算请求，只携带收货地址，金额一律以服务端购物车为准
type CheckoutRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

// Checkout 用当前购物车创建订单。
// 金额在此刻一次性计算并冻结，下单成功后购物车被清空。
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	items := h.cart.Items(ctx)
	if len(items) == 0 {
		response.Error(c, http.StatusBadRequest, "cart is empty")
		return
	}

	subtotal := h.cart.Total(ctx)
	shipping, tax, total := domain.ComputeCharges(subtotal)

	order, err := h.service.CreateOrder(ctx, application.CreateOrderInput{
		Items:    application.FromCartLines(items),
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
		ShippingAddress: domain.ShippingAddress{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Street:     req.Street,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
			Phone:      req.Phone,
		},
	})
	if errors.Is(err, errs.ErrNotAuthenticated) {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cart.Clear(ctx)
	if h.metrics != nil {
		h.metrics.OrdersCreatedTotal.Inc()
	}
	response.Success(c, order)
}

// ListOrders 返回当前用户的订单，按创建时间倒序
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.GetUserOrders(c.Request.Context())
	if errors.Is(err, errs.ErrNotAuthenticated) {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, orders)
}

// GetOrder 返回订单详情，仅限归属当前用户的订单
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.service.GetOrderByID(c.Request.Context(), uint(id))
	if errors.Is(err, errs.ErrNotAuthenticated) {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}
	if errors.Is(err, errs.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, order)
}
