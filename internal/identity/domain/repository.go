package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// FindByEmail 按邮箱精确匹配（区分大小写），不存在返回 errs.ErrNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID 按 ID 查找，不存在返回 errs.ErrNotFound
	FindByID(ctx context.Context, id uint) (*User, error)
	// Save 持久化新用户；ID 为零时分配为现有最大 ID 加一
	Save(ctx context.Context, user *User) error
	// Update 覆盖已有用户记录
	Update(ctx context.Context, user *User) error
}
