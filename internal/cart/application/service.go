// Package application 提供购物车应用服务
package application

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	catalogdomain "github.com/wyfcoding/voguevault/internal/catalog/domain"
	"github.com/wyfcoding/voguevault/internal/cart/domain"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/storage"
	"github.com/wyfcoding/voguevault/pkg/logger"
)

// CartService 购物车应用服务。
// 购物车保存在内存中，每次变更后把完整快照写回存储适配器；
// 存储写入失败只会导致变更不被持久化，不会影响内存状态。
type CartService struct {
	mu        sync.Mutex
	cart      *domain.Cart
	store     storage.Store
	publisher domain.EventPublisher
}

// NewCartService 创建购物车服务并从存储恢复快照，publisher 可为 nil
func NewCartService(ctx context.Context, store storage.Store, publisher domain.EventPublisher) *CartService {
	var items []domain.LineItem
	store.Get(ctx, storage.KeyCart, &items)
	return &CartService{
		cart:      domain.RestoreCart(items),
		store:     store,
		publisher: publisher,
	}
}

// AddItem 把商品加入购物车。
// 同复合键 (productId, size, color) 已存在时合并数量；
// 新行项捕获商品当前价格与主图作为永久快照。
// quantity 小于 1 返回 errs.ErrInvalidQuantity。
func (s *CartService) AddItem(ctx context.Context, product *catalogdomain.Product, size, color string, quantity int) error {
	if quantity < 1 {
		return errs.ErrInvalidQuantity
	}

	s.mu.Lock()
	s.cart.Add(domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		Image:     product.PrimaryImage(),
	})
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, domain.CartItemAddedEventType, domain.CartItemAddedEvent{
		ProductID: product.ID,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
		Price:     product.Price,
		Timestamp: time.Now(),
	})
	return nil
}

// UpdateQuantity 将行项数量设为给定值；小于等于零等价于删除
func (s *CartService) UpdateQuantity(ctx context.Context, productID uint, size, color string, quantity int) {
	key := domain.ItemKey{ProductID: productID, Size: size, Color: color}

	s.mu.Lock()
	s.cart.SetQuantity(key, quantity)
	s.persist(ctx)
	s.mu.Unlock()

	if quantity <= 0 {
		s.publish(ctx, domain.CartItemRemovedEventType, domain.CartItemRemovedEvent{
			ProductID: productID, Size: size, Color: color, Timestamp: time.Now(),
		})
	}
}

// RemoveItem 删除行项；不存在时为 no-op 而非错误
func (s *CartService) RemoveItem(ctx context.Context, productID uint, size, color string) {
	key := domain.ItemKey{ProductID: productID, Size: size, Color: color}

	s.mu.Lock()
	s.cart.Remove(key)
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, domain.CartItemRemovedEventType, domain.CartItemRemovedEvent{
		ProductID: productID, Size: size, Color: color, Timestamp: time.Now(),
	})
}

// Clear 清空购物车并持久化空状态
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart.Clear()
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, domain.CartClearedEventType, domain.CartClearedEvent{Timestamp: time.Now()})
}

// Items 返回按插入顺序排列的行项快照
func (s *CartService) Items(ctx context.Context) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// Total 返回购物车总金额，不做舍入
func (s *CartService) Total(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Count 返回购物车单件总数
func (s *CartService) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// persist 写回完整快照，调用方必须持有锁
func (s *CartService) persist(ctx context.Context) {
	s.store.Set(ctx, storage.KeyCart, s.cart.Items())
}

func (s *CartService) publish(ctx context.Context, topic string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, "cart", event); err != nil {
		logger.Warn(ctx, "Failed to publish cart event", "topic", topic, "error", err)
	}
}
