package domain

import (
	"context"
	"time"
)

// 事件主题
const (
	UserRegisteredEventType = "identity.user.registered"
	UserLoggedInEventType   = "identity.user.logged_in"
)

// UserRegisteredEvent 用户注册事件
type UserRegisteredEvent struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// UserLoggedInEvent 用户登录事件
type UserLoggedInEvent struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
