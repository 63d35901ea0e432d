package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestAddIsIdempotent(t *testing.T) {
	svc := NewWishlistService(context.Background(), newFakeStore())
	ctx := context.Background()

	svc.Add(ctx, 7)
	svc.Add(ctx, 7)
	svc.Add(ctx, 3)

	assert.Equal(t, []uint{7, 3}, svc.IDs(ctx))
}

func TestRemove(t *testing.T) {
	svc := NewWishlistService(context.Background(), newFakeStore())
	ctx := context.Background()

	svc.Add(ctx, 1)
	svc.Add(ctx, 2)
	svc.Remove(ctx, 1)
	svc.Remove(ctx, 99)

	assert.Equal(t, []uint{2}, svc.IDs(ctx))
}

func TestToggleFlipsExactlyOnce(t *testing.T) {
	svc := NewWishlistService(context.Background(), newFakeStore())
	ctx := context.Background()

	assert.True(t, svc.Toggle(ctx, 5))
	assert.True(t, svc.Contains(ctx, 5))
	assert.False(t, svc.Toggle(ctx, 5))
	assert.False(t, svc.Contains(ctx, 5))
}

func TestPersistsAndRestores(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	first := NewWishlistService(ctx, store)
	first.Add(ctx, 4)
	first.Add(ctx, 9)

	second := NewWishlistService(ctx, store)
	require.Equal(t, []uint{4, 9}, second.IDs(ctx))
	assert.True(t, second.Contains(ctx, 9))
}
