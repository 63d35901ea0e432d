// Package memory 提供内存用户仓储实现，初始数据来自内置种子文件
package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/identity/domain"
)

//go:embed users.json
var seedUsers []byte

type userRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewUserRepository 从内置种子数据创建用户仓储
func NewUserRepository() (domain.UserRepository, error) {
	return NewUserRepositoryFrom(seedUsers)
}

// NewUserRepositoryFrom 从给定 JSON 数据创建仓储，测试可注入自定义用户集
func NewUserRepositoryFrom(data []byte) (domain.UserRepository, error) {
	var users []*domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to load user seed: %w", err)
	}
	return &userRepository{users: users}, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		var maxID uint
		for _, u := range r.users {
			if u.ID > maxID {
				maxID = u.ID
			}
		}
		user.ID = maxID + 1
	}
	cpy := *user
	r.users = append(r.users, &cpy)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			cpy := *user
			r.users[i] = &cpy
			return nil
		}
	}
	return errs.ErrNotFound
}
