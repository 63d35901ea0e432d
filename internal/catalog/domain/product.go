// Package domain 包含商品目录的领域模型
package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品实体
// 目录对本服务只读，价格和库存不在此处被修改
type Product struct {
	// 商品 ID
	ID uint `json:"Id"`
	// 商品名称
	Name string `json:"name"`
	// 分类键
	Category string `json:"category"`
	// 单价
	Price decimal.Decimal `json:"price"`
	// 图片引用列表，首张为主图
	Images []string `json:"images"`
	// 可选尺码
	Sizes []string `json:"sizes"`
	// 可选颜色
	Colors []string `json:"colors"`
	// 是否有货
	InStock bool `json:"inStock"`
	// 商品描述
	Description string `json:"description"`
	// 是否精选
	Featured bool `json:"featured"`
	// 是否热门
	Trending bool `json:"trending"`
	// 创建时间
	CreatedAt time.Time `json:"createdAt"`
}

// PrimaryImage 返回主图，无图时返回空串
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// MatchesQuery 对名称、分类、描述做大小写不敏感的子串匹配
func (p *Product) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// ProductRepository 商品仓储接口，只读
type ProductRepository interface {
	// FindAll 返回全部商品
	FindAll(ctx context.Context) ([]*Product, error)
	// FindByID 按 ID 查找商品，不存在返回 errs.ErrNotFound
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindByCategory 按分类精确匹配，无结果返回空列表
	FindByCategory(ctx context.Context, category string) ([]*Product, error)
	// FindFeatured 返回精选商品
	FindFeatured(ctx context.Context) ([]*Product, error)
	// FindTrending 返回热门商品
	FindTrending(ctx context.Context) ([]*Product, error)
	// Search 全文检索名称、分类、描述
	Search(ctx context.Context, query string) ([]*Product, error)
}
