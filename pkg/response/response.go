// Package response 提供统一的 HTTP JSON 响应结构
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	// 业务码：0 表示成功
	Code int `json:"code"`
	// 提示信息
	Message string `json:"message"`
	// 响应数据
	Data any `json:"data,omitempty"`
}

// Success 返回成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

// Error 返回错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}
