// Package mysql 提供基于 GORM 的订单仓储实现
package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/order/domain"
	"gorm.io/gorm"
)

// OrderPO 订单持久化对象
type OrderPO struct {
	ID              uint            `gorm:"column:id;primaryKey"`
	OrderNumber     string          `gorm:"column:order_number;type:varchar(32);index;not null"`
	UserID          uint            `gorm:"column:user_id;index;not null"`
	Items           string          `gorm:"column:items;type:text;not null"`
	Subtotal        decimal.Decimal `gorm:"column:subtotal;type:decimal(20,2);not null"`
	Shipping        decimal.Decimal `gorm:"column:shipping;type:decimal(20,2);not null"`
	Tax             decimal.Decimal `gorm:"column:tax;type:decimal(20,2);not null"`
	Total           decimal.Decimal `gorm:"column:total;type:decimal(20,2);not null"`
	ShippingAddress string          `gorm:"column:shipping_address;type:text"`
	Status          string          `gorm:"column:status;type:varchar(20);not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;index"`
}

func (OrderPO) TableName() string { return "orders" }

type orderRepository struct{ db *gorm.DB }

// NewOrderRepository 创建 MySQL 订单仓储
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	po, err := toPO(order)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&po).Error; err != nil {
		return err
	}
	order.ID = po.ID
	return nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uint) ([]*domain.Order, error) {
	var pos []OrderPO
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&pos).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Order, 0, len(pos))
	for _, po := range pos {
		o, err := toDomain(po)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var po OrderPO
	err := r.db.WithContext(ctx).First(&po, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(po)
}

func toPO(order *domain.Order) (OrderPO, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return OrderPO{}, err
	}
	addr, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return OrderPO{}, err
	}
	return OrderPO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		Items:           string(items),
		Subtotal:        order.Subtotal,
		Shipping:        order.Shipping,
		Tax:             order.Tax,
		Total:           order.Total,
		ShippingAddress: string(addr),
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}, nil
}

func toDomain(po OrderPO) (*domain.Order, error) {
	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(po.Items), &items); err != nil {
		return nil, err
	}
	var addr domain.ShippingAddress
	if po.ShippingAddress != "" {
		if err := json.Unmarshal([]byte(po.ShippingAddress), &addr); err != nil {
			return nil, err
		}
	}
	return &domain.Order{
		ID:              po.ID,
		OrderNumber:     po.OrderNumber,
		UserID:          po.UserID,
		Items:           items,
		Subtotal:        po.Subtotal,
		Shipping:        po.Shipping,
		Tax:             po.Tax,
		Total:           po.Total,
		ShippingAddress: addr,
		Status:          domain.OrderStatus(po.Status),
		CreatedAt:       po.CreatedAt,
	}, nil
}
