package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenam/diamondstore/internal/store"
)

func TestFileBackend_LoadMissing(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, err = fb.Load(context.Background(), store.SnapshotKey)
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestFileBackend_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fb, err := NewFileBackend(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fb.Save(ctx, store.SnapshotKey, []byte(`{"version":0}`)))
	require.NoError(t, fb.Save(ctx, store.SnapshotKey, []byte(`{"version":1}`)))

	blob, err := fb.Load(ctx, store.SnapshotKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(blob))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "diamond-store.json", entries[0].Name())
}

func TestFileBackend_InvalidKey(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		t.Run(key, func(t *testing.T) {
			err := fb.Save(context.Background(), key, []byte("{}"))
			assert.ErrorIs(t, err, ErrInvalidKey)
			_, err = fb.Load(context.Background(), key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestFileBackend_StoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fb, err := NewFileBackend(dir)
	require.NoError(t, err)
	s, err := store.New(ctx, fb)
	require.NoError(t, err)

	order, err := s.AddOrder(ctx, store.NewOrder{CustomerName: "Hla Hla", Price: 4800, Diamonds: 56})
	require.NoError(t, err)

	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	restored, err := store.New(ctx, reopened)
	require.NoError(t, err)

	got, err := restored.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hla Hla", got.CustomerName)
	assert.Len(t, restored.ActivityLogs(), 1)
}
