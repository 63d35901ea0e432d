package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/voguevault/internal/errs"
	identityapp "github.com/wyfcoding/voguevault/internal/identity/application"
	identitymem "github.com/wyfcoding/voguevault/internal/identity/infrastructure/persistence/memory"
	"github.com/wyfcoding/voguevault/internal/order/domain"
	"github.com/wyfcoding/voguevault/internal/order/infrastructure/persistence/snapshot"
	"github.com/wyfcoding/voguevault/internal/storage"
)

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
   "password": "cGFzc3dvcmQxMjN2b2d1ZV92YXVsdF9zYWx0",
   "phone": "", "addresses": [], "createdAt": "2024-11-05T10:15:00Z"},
  {"Id": 2, "email": "liam@example.com", "firstName": "Liam", "lastName": "Ortega",
   "password": "cGFzc3dvcmQxMjN2b2d1ZV92YXVsdF9zYWx0",
   "phone": "", "addresses": [], "createdAt": "2025-01-22T18:40:00Z"}
]`

func newServices(t *testing.T) (*OrderService, *identityapp.IdentityService, *fakeStore) {
	t.Helper()
	userRepo, err := identitymem.NewUserRepositoryFrom([]byte(usersSeed))
	require.NoError(t, err)

	store := newFakeStore()
	identity := identityapp.NewIdentityService(userRepo, store, nil)
	orders := NewOrderService(snapshot.NewOrderRepository(store), identity, nil)
	return orders, identity, store
}

func sampleInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "dress", Price: decimal.RequireFromString("120"), Quantity: 2, Size: "M", Color: "Black"},
		},
		Subtotal:        decimal.RequireFromString("240"),
		Shipping:        decimal.RequireFromString("10"),
		Tax:             decimal.RequireFromString("19.20"),
		Total:           decimal.RequireFromString("269.20"),
		ShippingAddress: domain.ShippingAddress{FirstName: "Emma", City: "Paris", Country: "France"},
	}
}

func TestCreateOrderRequiresSession(t *testing.T) {
	orders, _, store := newServices(t)

	_, err := orders.CreateOrder(context.Background(), sampleInput())
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)

	// 未登录时不追加任何订单
	var persisted []*domain.Order
	assert.False(t, store.Get(context.Background(), storage.KeyOrders, &persisted))
}

func TestCreateOrderAssignsSequentialID(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	first, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, domain.OrderStatusProcessing, first.Status)

	second, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestCreateOrderNumberFormat(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	o, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.Len(t, o.OrderNumber, 10)
	assert.Equal(t, "VO", o.OrderNumber[:2])
}

func TestGetUserOrdersSortedDescending(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	orders.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	first, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	second, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)

	list, err := orders.GetUserOrders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestGetUserOrdersScopedToCurrentUser(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)
	_, err = orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)

	// 切换用户后看不到他人订单
	_, err = identity.Login(ctx, "liam@example.com", "password123")
	require.NoError(t, err)

	list, err := orders.GetUserOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetOrderByID(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)
	created, err := orders.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)

	got, err := orders.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, got.OrderNumber)

	_, err = orders.GetOrderByID(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// 他人订单按不存在处理
	_, err = identity.Login(ctx, "liam@example.com", "password123")
	require.NoError(t, err)
	_, err = orders.GetOrderByID(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// 未登录
	identity.Logout(ctx)
	_, err = orders.GetOrderByID(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestOrderAmountsFrozen(t *testing.T) {
	orders, identity, _ := newServices(t)
	ctx := context.Background()

	_, err := identity.Login(ctx, "emma@example.com", "password123")
	require.NoError(t, err)

	input := sampleInput()
	created, err := orders.CreateOrder(ctx, input)
	require.NoError(t, err)

	got, err := orders.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("240")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("269.20")))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}
