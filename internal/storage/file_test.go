package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	in := snapshot{Name: "cart", Count: 3, Tags: []string{"a", "b"}}
	store.Set(ctx, KeyCart, in)

	var out snapshot
	require.True(t, store.Get(ctx, KeyCart, &out))
	assert.Equal(t, in, out)
}

func TestFileStoreGetMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	var out snapshot
	assert.False(t, store.Get(context.Background(), KeyOrders, &out))
	assert.Zero(t, out)
}

func TestFileStoreGetCorrupted(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644))

	var out snapshot
	assert.False(t, store.Get(context.Background(), KeyCart, &out))
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	store.Set(ctx, KeyWishlist, []int{1, 2})
	store.Clear(ctx, KeyWishlist)
	store.Clear(ctx, KeyWishlist)

	var out []int
	assert.False(t, store.Get(ctx, KeyWishlist, &out))
}

func TestFileStoreSetFailureDropsWrite(t *testing.T) {
	dropped := 0
	store := NewFileStore(filepath.Join(t.TempDir(), "missing", "nested"), WithWriteFailureHook(func() { dropped++ }))
	// 目录创建失败后写入应被静默丢弃而不是报错
	_ = os.RemoveAll(store.dir)

	store.Set(context.Background(), KeyCart, snapshot{Name: "x"})
	assert.Equal(t, 1, dropped)
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	store.Set(ctx, KeySession, snapshot{Name: "first"})
	store.Set(ctx, KeySession, snapshot{Name: "second"})

	var out snapshot
	require.True(t, store.Get(ctx, KeySession, &out))
	assert.Equal(t, "second", out.Name)
}
