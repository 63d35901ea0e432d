// Package mysql 提供基于 GORM 的商品目录实现
package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/voguevault/internal/catalog/domain"
	"github.com/wyfcoding/voguevault/internal/errs"
	"gorm.io/gorm"
)

// ProductPO 商品持久化对象
type ProductPO struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;type:varchar(255);not null"`
	Category    string          `gorm:"column:category;type:varchar(100);index"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,2);not null"`
	Images      string          `gorm:"column:images;type:text"`
	Sizes       string          `gorm:"column:sizes;type:text"`
	Colors      string          `gorm:"column:colors;type:text"`
	InStock     bool            `gorm:"column:in_stock;not null;default:true"`
	Description string          `gorm:"column:description;type:text"`
	Featured    bool            `gorm:"column:featured;index"`
	Trending    bool            `gorm:"column:trending;index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (ProductPO) TableName() string { return "products" }

type productRepository struct{ db *gorm.DB }

// NewProductRepository 创建 MySQL 商品仓储
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	var pos []ProductPO
	if err := r.db.WithContext(ctx).Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var po ProductPO
	err := r.db.WithContext(ctx).First(&po, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(po), nil
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	var pos []ProductPO
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func (r *productRepository) FindFeatured(ctx context.Context) ([]*domain.Product, error) {
	var pos []ProductPO
	if err := r.db.WithContext(ctx).Where("featured = ?", true).Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func (r *productRepository) FindTrending(ctx context.Context) ([]*domain.Product, error) {
	var pos []ProductPO
	if err := r.db.WithContext(ctx).Where("trending = ?", true).Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func (r *productRepository) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	like := "%" + query + "%"
	var pos []ProductPO
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like, like).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func toDomain(po ProductPO) *domain.Product {
	return &domain.Product{
		ID:          po.ID,
		Name:        po.Name,
		Category:    po.Category,
		Price:       po.Price,
		Images:      decodeStrings(po.Images),
		Sizes:       decodeStrings(po.Sizes),
		Colors:      decodeStrings(po.Colors),
		InStock:     po.InStock,
		Description: po.Description,
		Featured:    po.Featured,
		Trending:    po.Trending,
		CreatedAt:   po.CreatedAt,
	}
}

func toDomainList(pos []ProductPO) []*domain.Product {
	out := make([]*domain.Product, 0, len(pos))
	for _, po := range pos {
		out = append(out, toDomain(po))
	}
	return out
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
