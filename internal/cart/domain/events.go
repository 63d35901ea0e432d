package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// 事件主题
const (
	CartItemAddedEventType   = "cart.item.added"
	CartItemRemovedEventType = "cart.item.removed"
	CartClearedEventType     = "cart.cleared"
)

// CartItemAddedEvent 加购事件
type CartItemAddedEvent struct {
	ProductID uint            `json:"product_id"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}

// CartItemRemovedEvent 移除行项事件
type CartItemRemovedEvent struct {
	ProductID uint      `json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 清空购物车事件
type CartClearedEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
