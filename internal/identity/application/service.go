// Package application 提供身份认证与账户管理服务
package application

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/identity/domain"
	"github.com/wyfcoding/voguevault/internal/storage"
	"github.com/wyfcoding/voguevault/pkg/logger"
)

// IdentityService 身份服务。
// 持久化的会话快照是"当前登录用户"的唯一权威，没有独立令牌或过期时间，
// 会话一直有效直到显式登出或存储被清空。
type IdentityService struct {
	repo      domain.UserRepository
	store     storage.Store
	publisher domain.EventPublisher
}

// NewIdentityService 创建身份服务实例，publisher 可为 nil
func NewIdentityService(repo domain.UserRepository, store storage.Store, publisher domain.EventPublisher) *IdentityService {
	return &IdentityService{repo: repo, store: store, publisher: publisher}
}

// Register 注册新用户并立即登录。
// 邮箱精确匹配（区分大小写），重复时返回 errs.ErrDuplicateEmail，
// 且不改动任何已有用户。
func (s *IdentityService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrDuplicateEmail
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	user := domain.NewUser(email, domain.TransformPassword(password), firstName, lastName)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	session := user.Session()
	s.store.Set(ctx, storage.KeySession, session)

	if s.publisher != nil {
		event := domain.UserRegisteredEvent{UserID: user.ID, Email: user.Email, Timestamp: time.Now()}
		if err := s.publisher.Publish(ctx, domain.UserRegisteredEventType, user.Email, event); err != nil {
			logger.Warn(ctx, "Failed to publish user registered event", "error", err)
		}
	}

	logger.Info(ctx, "User registered", "user_id", user.ID)
	return session, nil
}

// Login 校验邮箱与凭证，成功后持久化并返回去凭证会话。
// 邮箱不存在或凭证不匹配统一返回 errs.ErrInvalidCredentials，
// 失败时不创建也不改动会话。
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !domain.VerifyPassword(password, user.PasswordHash) {
		return nil, errs.ErrInvalidCredentials
	}

	session := user.Session()
	s.store.Set(ctx, storage.KeySession, session)

	if s.publisher != nil {
		event := domain.UserLoggedInEvent{UserID: user.ID, Email: user.Email, Timestamp: time.Now()}
		if err := s.publisher.Publish(ctx, domain.UserLoggedInEventType, user.Email, event); err != nil {
			logger.Warn(ctx, "Failed to publish user logged in event", "error", err)
		}
	}

	return session, nil
}

// Logout 无条件清除会话，幂等
func (s *IdentityService) Logout(ctx context.Context) {
	s.store.Clear(ctx, storage.KeySession)
}

// CurrentUser 返回持久化会话，不存在时返回 nil，从不报错
func (s *IdentityService) CurrentUser(ctx context.Context) *domain.Session {
	var session domain.Session
	if !s.store.Get(ctx, storage.KeySession, &session) {
		return nil
	}
	return &session
}

// IsAuthenticated 当且仅当存在会话时为 true
func (s *IdentityService) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentUser(ctx) != nil
}

// GetProfile 返回当前用户的档案（去凭证）
func (s *IdentityService) GetProfile(ctx context.Context) (*domain.Session, error) {
	user, err := s.currentRecord(ctx)
	if err != nil {
		return nil, err
	}
	return user.Session(), nil
}

// UpdateProfile 更新姓名与电话。ID、邮箱和凭证不可通过此路径修改。
// 更新后的档案会重新写入会话快照。
func (s *IdentityService) UpdateProfile(ctx context.Context, firstName, lastName, phone string) (*domain.Session, error) {
	user, err := s.currentRecord(ctx)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Phone = phone
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	session := user.Session()
	s.store.Set(ctx, storage.KeySession, session)
	return session, nil
}

// Addresses 返回当前用户的收货地址列表
func (s *IdentityService) Addresses(ctx context.Context) ([]domain.Address, error) {
	user, err := s.currentRecord(ctx)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

// AddAddress 追加收货地址。第一个地址自动成为默认地址，
// 默认地址的唯一性之后不再校验。
func (s *IdentityService) AddAddress(ctx context.Context, addr domain.Address) (domain.Address, error) {
	user, err := s.currentRecord(ctx)
	if err != nil {
		return domain.Address{}, err
	}

	addr.ID = time.Now().UnixMilli()
	added := user.AddAddress(addr)
	if err := s.repo.Update(ctx, user); err != nil {
		return domain.Address{}, err
	}

	s.store.Set(ctx, storage.KeySession, user.Session())
	return added, nil
}

func (s *IdentityService) currentRecord(ctx context.Context) (*domain.User, error) {
	session := s.CurrentUser(ctx)
	if session == nil {
		return nil, errs.ErrNotAuthenticated
	}
	return s.repo.FindByID(ctx, session.ID)
}
