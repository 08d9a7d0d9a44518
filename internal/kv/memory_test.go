package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenam/diamondstore/internal/store"
)

func TestMemoryBackend(t *testing.T) {
	mb := NewMemoryBackend()
	ctx := context.Background()

	_, err := mb.Load(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNoSnapshot)

	blob := []byte(`{"a":1}`)
	require.NoError(t, mb.Save(ctx, "k", blob))
	blob[2] = 'b'

	got, err := mb.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got[2] = 'c'
	again, err := mb.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again))
}
