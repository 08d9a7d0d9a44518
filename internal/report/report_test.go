package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/kv"
	"github.com/sevenam/diamondstore/internal/notify"
	mock_notify "github.com/sevenam/diamondstore/internal/notify/mocks"
	"github.com/sevenam/diamondstore/internal/store"
)

func TestReporter_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_notify.NewMockNotifier(ctrl)

	now := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)
	st, err := store.New(context.Background(), kv.NewMemoryBackend())
	require.NoError(t, err)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) error {
			assert.Equal(t, "7AM Diamond daily summary 2024-01-15", msg.Subject)
			assert.Contains(t, msg.Body, "Orders in the last 24h: 2")
			assert.Contains(t, msg.Body, "Revenue: 45000 MMK (pending 9000 MMK)")
			assert.Contains(t, msg.Body, "Average order: 27000 MMK")
			return nil
		})

	r := New(st, notifier, zap.NewNop())
	r.timeNow = func() time.Time { return now }

	require.NoError(t, r.Send(context.Background()))
}

func TestReporter_SendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_notify.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("no route"))

	st, err := store.New(context.Background(), kv.NewMemoryBackend())
	require.NoError(t, err)

	r := New(st, notifier, zap.NewNop())
	assert.Error(t, r.Send(context.Background()))
}

func TestReporter_Start(t *testing.T) {
	st, err := store.New(context.Background(), kv.NewMemoryBackend())
	require.NoError(t, err)
	r := New(st, nil, zap.NewNop())

	err = r.Start("not a schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report schedule")

	require.NoError(t, r.Start("0 21 * * *"))
	r.Stop(context.Background())
}
