package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "data", cfg.Store.Dir)
	assert.Equal(t, "0 21 * * *", cfg.ReportSchedule)
	assert.Equal(t, int64(5<<20), cfg.MaxScreenshotBytes)
	assert.Equal(t, 500*time.Millisecond, cfg.Events.FlushTimeout)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("EVENT_FLUSH_TIMEOUT", "2s")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-1001234567890")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Events.FlushTimeout)
	assert.Equal(t, int64(-1001234567890), cfg.Telegram.AdminChatID)
	assert.Equal(t,
		"host=db port=6432 user=postgres password=secret dbname=diamondstore sslmode=disable",
		cfg.Postgres.DB().DSN())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("STORE_DIR=/var/lib/diamondstore\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STORE_DIR") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/diamondstore", cfg.Store.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name, key, value, want string
	}{
		{"unknown backend", "STORE_BACKEND", "redis", "unknown STORE_BACKEND"},
		{"no workers", "EVENT_WORKERS", "0", "EVENT_WORKERS"},
		{"zero batch", "EVENT_BATCH_SIZE", "0", "EVENT_BATCH_SIZE"},
		{"zero screenshot limit", "MAX_SCREENSHOT_BYTES", "0", "MAX_SCREENSHOT_BYTES"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
