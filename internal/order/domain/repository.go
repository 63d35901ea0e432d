package domain

import "context"

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Save 持久化新订单；ID 为零时分配为现有最大 ID 加一
	Save(ctx context.Context, order *Order) error
	// FindByUser 返回指定用户的全部订单，顺序不做保证
	FindByUser(ctx context.Context, userID uint) ([]*Order, error)
	// FindByID 按 ID 查找订单，不存在返回 errs.ErrNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)
}
