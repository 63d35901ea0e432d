package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderCreatedEventType 订单创建事件主题
const OrderCreatedEventType = "order.created"

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID     uint            `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	UserID      uint            `json:"user_id"`
	Total       decimal.Decimal `json:"total"`
	Timestamp   time.Time       `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
