// Package memory 提供内存商品目录实现，数据来自内置种子文件
package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/wyfcoding/voguevault/internal/catalog/domain"
	"github.com/wyfcoding/voguevault/internal/errs"
)

//go:embed products.json
var seedProducts []byte

type productRepository struct {
	products []*domain.Product
	byID     map[uint]*domain.Product
}

// NewProductRepository 从内置种子数据创建只读商品仓储
func NewProductRepository() (domain.ProductRepository, error) {
	return NewProductRepositoryFrom(seedProducts)
}

// NewProductRepositoryFrom 从给定 JSON 数据创建仓储，测试可注入自定义目录
func NewProductRepositoryFrom(data []byte) (domain.ProductRepository, error) {
	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to load product seed: %w", err)
	}

	byID := make(map[uint]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &productRepository{products: products, byID: byID}, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return p, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Category == category }), nil
}

func (r *productRepository) FindFeatured(ctx context.Context) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Featured }), nil
}

func (r *productRepository) FindTrending(ctx context.Context) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Trending }), nil
}

func (r *productRepository) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.MatchesQuery(query) }), nil
}

func (r *productRepository) filter(pred func(*domain.Product) bool) []*domain.Product {
	out := make([]*domain.Product, 0)
	for _, p := range r.products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
