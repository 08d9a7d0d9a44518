package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diamondstore.log")

	logger := New(path)
	logger.Info("order received", zap.String("order_id", "ORD003"))
	logger.Debug("not in file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "order received")
	assert.Contains(t, string(data), "ORD003")
	assert.NotContains(t, string(data), "not in file")
	assert.Same(t, logger, zap.L())
}

func TestNewRotatingFile(t *testing.T) {
	lj := newRotatingFile("/var/log/diamondstore.log")
	assert.Equal(t, "/var/log/diamondstore.log", lj.Filename)
	assert.True(t, lj.Compress)
	assert.Equal(t, 50, lj.MaxSize)
}
