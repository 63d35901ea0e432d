// Package application 提供商品目录查询服务
package application

import (
	"context"

	"github.com/wyfcoding/voguevault/internal/catalog/domain"
)

// CatalogQueryService 商品目录查询服务，目录对外只读
type CatalogQueryService struct {
	repo domain.ProductRepository
}

// NewCatalogQueryService 创建目录查询服务实例
func NewCatalogQueryService(repo domain.ProductRepository) *CatalogQueryService {
	return &CatalogQueryService{repo: repo}
}

// ListProducts 返回全部商品
func (s *CatalogQueryService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProduct 按 ID 获取商品
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByCategory 按分类精确匹配
func (s *CatalogQueryService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

// ListFeatured 返回精选商品
func (s *CatalogQueryService) ListFeatured(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindFeatured(ctx)
}

// ListTrending 返回热门商品
func (s *CatalogQueryService) ListTrending(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindTrending(ctx)
}

// Search 对名称、分类、描述做大小写不敏感检索
func (s *CatalogQueryService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	return s.repo.Search(ctx, query)
}
