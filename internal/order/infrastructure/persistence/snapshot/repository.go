// Package snapshot 提供基于快照存储适配器的订单仓储实现。
// 订单集合以单个 JSON 快照整体读写，与其余快照键共用同一容错策略。
package snapshot

import (
	"context"
	"sync"

	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/order/domain"
	"github.com/wyfcoding/voguevault/internal/storage"
)

type orderRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewOrderRepository 创建快照存储订单仓储
func NewOrderRepository(store storage.Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) load(ctx context.Context) []*domain.Order {
	var orders []*domain.Order
	r.store.Get(ctx, storage.KeyOrders, &orders)
	return orders
}

func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := r.load(ctx)
	if order.ID == 0 {
		var maxID uint
		for _, o := range orders {
			if o.ID > maxID {
				maxID = o.ID
			}
		}
		order.ID = maxID + 1
	}
	orders = append(orders, order)
	r.store.Set(ctx, storage.KeyOrders, orders)
	return nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uint) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Order, 0)
	for _, o := range r.load(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.load(ctx) {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errs.ErrNotFound
}
