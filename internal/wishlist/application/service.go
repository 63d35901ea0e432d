// Package application 提供心愿单应用服务
package application

import (
	"context"
	"sync"

	"github.com/wyfcoding/voguevault/internal/storage"
	"github.com/wyfcoding/voguevault/internal/wishlist/domain"
)

// WishlistService 心愿单应用服务，每次变更后持久化完整快照
type WishlistService struct {
	mu       sync.Mutex
	wishlist *domain.Wishlist
	store    storage.Store
}

// NewWishlistService 创建心愿单服务并从存储恢复快照
func NewWishlistService(ctx context.Context, store storage.Store) *WishlistService {
	var ids []uint
	store.Get(ctx, storage.KeyWishlist, &ids)
	return &WishlistService{
		wishlist: domain.RestoreWishlist(ids),
		store:    store,
	}
}

// Add 加入商品；已存在时为 no-op
func (s *WishlistService) Add(ctx context.Context, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishlist.Add(productID) {
		s.persist(ctx)
	}
}

// Remove 移除商品并持久化（无论是否发生变化）
func (s *WishlistService) Remove(ctx context.Context, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Remove(productID)
	s.persist(ctx)
}

// Toggle 翻转成员状态，返回翻转后是否在心愿单中
func (s *WishlistService) Toggle(ctx context.Context, productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.wishlist.Toggle(productID)
	s.persist(ctx)
	return in
}

// Contains 成员测试，无副作用
func (s *WishlistService) Contains(ctx context.Context, productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// IDs 返回按插入顺序排列的商品 ID
func (s *WishlistService) IDs(ctx context.Context) []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.IDs()
}

func (s *WishlistService) persist(ctx context.Context) {
	s.store.Set(ctx, storage.KeyWishlist, s.wishlist.IDs())
}
