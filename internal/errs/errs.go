// Package errs 定义跨层使用的哨兵错误，便于 errors.Is 稳定匹配
package errs

import "errors"

var (
	// ErrNotFound 请求的商品或订单不存在
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated 操作要求已登录会话
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials 登录凭证不匹配
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail 注册邮箱已存在
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidQuantity 购物车数量小于 1
	ErrInvalidQuantity = errors.New("invalid quantity")
)
