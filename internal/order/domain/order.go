// Package domain 包含订单的领域模型
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus 订单状态，线性推进 Processing → Shipped → Delivered。
// 本服务只在创建时赋值 Processing，之后从不推进状态。
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// OrderItem 订单行项，下单时刻购物车行项的不可变快照
type OrderItem struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Image     string          `json:"image"`
}

// ShippingAddress 收货地址快照
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order 订单实体。创建后除状态外全部不可变，金额在创建时一次性冻结。
type Order struct {
	// 整数主键，取现有最大 ID 加一
	ID uint `json:"Id"`
	// 面向用户的订单号，基于时间派生，仅用于展示；
	// 毫秒窗口内连续下单理论上可能重复，唯一性由整数 ID 保证
	OrderNumber string `json:"orderNumber"`
	// 归属用户 ID
	UserID uint `json:"userId"`
	// 行项快照
	Items []OrderItem `json:"items"`
	// 商品小计
	Subtotal decimal.Decimal `json:"subtotal"`
	// 运费
	Shipping decimal.Decimal `json:"shipping"`
	// 税费
	Tax decimal.Decimal `json:"tax"`
	// 总计
	Total decimal.Decimal `json:"total"`
	// 收货地址快照
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	// 订单状态
	Status OrderStatus `json:"status"`
	// 创建时间
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderNumber 从时间戳尾部八位派生订单号，前缀固定为 VO
func NewOrderNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "VO" + ms
}

// NewOrder 创建订单，状态固定为 Processing，ID 由仓储分配
func NewOrder(userID uint, items []OrderItem, subtotal, shipping, tax, total decimal.Decimal, addr ShippingAddress, now time.Time) *Order {
	snapshot := make([]OrderItem, len(items))
	copy(snapshot, items)
	return &Order{
		OrderNumber:     NewOrderNumber(now),
		UserID:          userID,
		Items:           snapshot,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		ShippingAddress: addr,
		Status:          OrderStatusProcessing,
		CreatedAt:       now,
	}
}
