// Package http 提供身份认证与账户管理的 HTTP 接口
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/identity/application"
	"github.com/wyfcoding/voguevault/internal/identity/domain"
	"github.com/wyfcoding/voguevault/pkg/response"
)

// IdentityHandler 身份服务 HTTP 处理器
type IdentityHandler struct {
	service *application.IdentityService
}

// NewIdentityHandler 创建处理器实例
func NewIdentityHandler(service *application.IdentityService) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *IdentityHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
	profile := router.Group("/api/v1/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
	addresses := router.Group("/api/v1/addresses")
	{
		addresses.GET("", h.ListAddresses)
		addresses.POST("", h.AddAddress)
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// Register 注册新用户，成功后立即建立会话
func (h *IdentityHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if errors.Is(err, errs.ErrDuplicateEmail) {
		response.Error(c, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, session)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录
func (h *IdentityHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, errs.ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, session)
}

// Logout 登出，幂等
func (h *IdentityHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.Success(c, nil)
}

// Me 返回当前会话，未登录时 data 为 null
func (h *IdentityHandler) Me(c *gin.Context) {
	response.Success(c, h.service.CurrentUser(c.Request.Context()))
}

// GetProfile 返回当前用户档案
func (h *IdentityHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context())
	if h.handleNotAuthenticated(c, err) {
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, profile)
}

// UpdateProfileRequest 更新档案请求
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// UpdateProfile 更新姓名与电话。邮箱与凭证不可通过此接口修改。
func (h *IdentityHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), req.FirstName, req.LastName, req.Phone)
	if h.handleNotAuthenticated(c, err) {
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, profile)
}

// ListAddresses 返回当前用户的收货地址
func (h *IdentityHandler) ListAddresses(c *gin.Context) {
	addrs, err := h.service.Addresses(c.Request.Context())
	if h.handleNotAuthenticated(c, err) {
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, addrs)
}

// AddAddressRequest 新增地址请求
type AddAddressRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// AddAddress 追加收货地址，首个地址自动成为默认地址
func (h *IdentityHandler) AddAddress(c *gin.Context) {
	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := h.service.AddAddress(c.Request.Context(), domain.Address{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if h.handleNotAuthenticated(c, err) {
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, addr)
}

func (h *IdentityHandler) handleNotAuthenticated(c *gin.Context, err error) bool {
	if errors.Is(err, errs.ErrNotAuthenticated) {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return true
	}
	return false
}
