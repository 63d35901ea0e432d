// Package mysql 提供基于 GORM 的用户仓储实现
package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/identity/domain"
	"gorm.io/gorm"
)

// UserPO 用户持久化对象
type UserPO struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100)"`
	LastName     string    `gorm:"column:last_name;type:varchar(100)"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Phone        string    `gorm:"column:phone;type:varchar(50)"`
	Addresses    string    `gorm:"column:addresses;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (UserPO) TableName() string { return "users" }

type userRepository struct{ db *gorm.DB }

// NewUserRepository 创建 MySQL 用户仓储
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var po UserPO
	// BINARY 比较保持邮箱匹配区分大小写，与内存实现一致
	err := r.db.WithContext(ctx).Where("BINARY email = ?", email).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(po)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var po UserPO
	err := r.db.WithContext(ctx).First(&po, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(po)
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	po, err := toPO(user)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&po).Error; err != nil {
		return err
	}
	user.ID = po.ID
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	po, err := toPO(user)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&UserPO{}).Where("id = ?", user.ID).Updates(map[string]any{
		"first_name": po.FirstName,
		"last_name":  po.LastName,
		"phone":      po.Phone,
		"addresses":  po.Addresses,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func toDomain(po UserPO) (*domain.User, error) {
	var addrs []domain.Address
	if po.Addresses != "" {
		if err := json.Unmarshal([]byte(po.Addresses), &addrs); err != nil {
			return nil, err
		}
	}
	return &domain.User{
		ID:           po.ID,
		Email:        po.Email,
		FirstName:    po.FirstName,
		LastName:     po.LastName,
		PasswordHash: po.PasswordHash,
		Phone:        po.Phone,
		Addresses:    addrs,
		CreatedAt:    po.CreatedAt,
	}, nil
}

func toPO(user *domain.User) (UserPO, error) {
	addrs, err := json.Marshal(user.Addresses)
	if err != nil {
		return UserPO{}, err
	}
	return UserPO{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Addresses:    string(addrs),
		CreatedAt:    user.CreatedAt,
	}, nil
}
