package checkout

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenshotEncoder_Encode(t *testing.T) {
	data := pngBytes(t)
	enc := NewScreenshotEncoder(1 << 20)

	uri, err := enc.Encode(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestScreenshotEncoder_Errors(t *testing.T) {
	data := pngBytes(t)

	t.Run("nil reader", func(t *testing.T) {
		_, err := NewScreenshotEncoder(1024).Encode(context.Background(), nil)
		assert.ErrorIs(t, err, ErrScreenshotRequired)
	})

	t.Run("empty upload", func(t *testing.T) {
		_, err := NewScreenshotEncoder(1024).Encode(context.Background(), bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrScreenshotRequired)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := NewScreenshotEncoder(int64(len(data)-1)).Encode(context.Background(), bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrScreenshotTooLarge)
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		_, err := NewScreenshotEncoder(int64(len(data))).Encode(context.Background(), bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("text file", func(t *testing.T) {
		_, err := NewScreenshotEncoder(1024).Encode(context.Background(), strings.NewReader("hello"))
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewScreenshotEncoder(1024).Encode(ctx, bytes.NewReader(data))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
