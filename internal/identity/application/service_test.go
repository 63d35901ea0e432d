package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/voguevault/internal/errs"
	"github.com/wyfcoding/voguevault/internal/identity/domain"
	"github.com/wyfcoding/voguevault/internal/identity/infrastructure/persistence/memory"
	"github.com/wyfcoding/voguevault/internal/storage"
)

// fakeStore 内存版快照存储，通过 JSON 往返模拟真实后端的序列化行为
type fakeStore struct {
	data map[storage.Key][]byte
}

var _ storage.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[storage.Key][]byte{}}
}

func (f *fakeStore) Get(_ context.Context, key storage.Key, dest any) bool {
	raw, ok := f.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (f *fakeStore) Set(_ context.Context, key storage.Key, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.data[key] = raw
}

func (f *fakeStore) Clear(_ context.Context, key storage.Key) {
	delete(f.data, key)
}

const usersSeed = `[
  {"Id": 1, "email": "emma@example.com", "firstName": "Emma", "lastName": "Laurent",
   "password": "` + "cGFzc3dvcmQxMjN2b2d1ZV92YXVsdF9zYWx0" + `",
   "phone": "", "addresses": [], "createdAt": "2024-11-05T10:15:00Z"}
]`

func newService(t *testing.T) (*IdentityService, *fakeStore, domain.UserRepository) {
	t.Helper()
	repo, err := memory.NewUserRepositoryFrom([]byte(usersSeed))
	require.NoError(t, err)
	store := newFakeStore()
	return NewIdentityService(repo, store, nil), store, repo
}

func TestRegisterAssignsNextIDAndLogsIn(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "new@example.com", "pw", "Ada", "Byron")
	require.NoError(t, err)
	assert.Equal(t, uint(2), session.ID)
	assert.Equal(t, "new@example.com", session.Email)

	current := svc.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, repo := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "emma@example.com", "pw", "X", "Y")
	assert.ErrorIs(t, err, errs.ErrDuplicateEmail)

	// 已有用户不受影响，也没有新建用户
	existing, err := repo.FindByEmail(ctx, "emma@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Emma", existing.FirstName)
	_, err = repo.FindByID(ctx, 2)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRegisterEmailMatchIsCaseSensitive(t *testing.T) {
	svc, _, _ := newService(t)

	// 大小写不同的邮箱视为不同账号（保留观察到的行为）
	session, err := svc.Register(context.Background(), "EMMA@example.com", "pw", "E", "L")
	require.NoError(t, err)
	assert.Equal(t, "EMMA@example.com", session.Email)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), session.ID)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestLoginWrongPasswordLeavesSessionAbsent(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "emma@example.com", "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	assert.Nil(t, svc.CurrentUser(ctx))
	assert.Empty(t, store.data)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLogoutIdempotent(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	svc.Logout(ctx)
	assert.Nil(t, svc.CurrentUser(ctx))
	svc.Logout(ctx)
	assert.Nil(t, svc.CurrentUser(ctx))
}

func TestSessionStripsCredential(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	raw := store.data[storage.KeySession]
	assert.NotContains(t, string(raw), "cGFzc3dvcmQxMjN2b2d1ZV92YXVsdF9zYWx0")
}

func TestUpdateProfile(t *testing.T) {
	svc, _, repo := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	session, err := svc.UpdateProfile(ctx, "Emmanuelle", "Laurent", "+33 7 00 00 00 00")
	require.NoError(t, err)
	assert.Equal(t, "Emmanuelle", session.FirstName)

	stored, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Emmanuelle", stored.FirstName)
	assert.Equal(t, "emma@example.com", stored.Email)
}

func TestProfileRequiresSession(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)

	_, err = svc.AddAddress(context.Background(), domain.Address{City: "Paris"})
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestAddAddressFirstBecomesDefault(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	first, err := svc.AddAddress(ctx, domain.Address{Street: "1 Main St", City: "Lyon"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.AddAddress(ctx, domain.Address{Street: "2 Side St", City: "Nice"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	addrs, err := svc.Addresses(ctx)
	require.NoError(t, err)
	assert.Len(t, addrs, 2)
}
