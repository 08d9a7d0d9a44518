package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/notify"
	mock_notify "github.com/sevenam/diamondstore/internal/notify/mocks"
	"github.com/sevenam/diamondstore/internal/store"
)

func TestDispatcher_Notify(t *testing.T) {
	msg := notify.Message{Subject: "New order ORD003", Body: "..."}

	tests := []struct {
		name       string
		flags      store.Notifications
		setupMocks func(push, email *mock_notify.MockNotifier)
	}{
		{
			name:  "all channels on",
			flags: store.Notifications{Email: true, SMS: true, Push: true},
			setupMocks: func(push, email *mock_notify.MockNotifier) {
				push.EXPECT().Notify(gomock.Any(), msg).Return(nil)
				email.EXPECT().Notify(gomock.Any(), msg).Return(nil)
			},
		},
		{
			name:       "all channels off",
			flags:      store.Notifications{},
			setupMocks: func(push, email *mock_notify.MockNotifier) {},
		},
		{
			name:  "email only",
			flags: store.Notifications{Email: true},
			setupMocks: func(push, email *mock_notify.MockNotifier) {
				email.EXPECT().Notify(gomock.Any(), msg).Return(nil)
			},
		},
		{
			name:  "failing channel does not stop the others",
			flags: store.Notifications{Email: true, Push: true},
			setupMocks: func(push, email *mock_notify.MockNotifier) {
				push.EXPECT().Notify(gomock.Any(), msg).Return(errors.New("bot was kicked"))
				email.EXPECT().Notify(gomock.Any(), msg).Return(nil)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			push := mock_notify.NewMockNotifier(ctrl)
			email := mock_notify.NewMockNotifier(ctrl)
			tc.setupMocks(push, email)

			settings := func() store.SystemSettings {
				return store.SystemSettings{Notifications: tc.flags}
			}
			d := notify.NewDispatcher(settings, push, email, zap.NewNop())

			assert.NoError(t, d.Notify(context.Background(), msg))
		})
	}
}

func TestDispatcher_MissingChannels(t *testing.T) {
	settings := func() store.SystemSettings {
		return store.SystemSettings{Notifications: store.Notifications{Email: true, SMS: true, Push: true}}
	}
	d := notify.NewDispatcher(settings, nil, nil, zap.NewNop())

	assert.NoError(t, d.Notify(context.Background(), notify.Message{Subject: "x"}))
}

func TestNewOrderMessage(t *testing.T) {
	msg := notify.NewOrderMessage(store.Order{
		ID:            "ORD003",
		MlbbID:        "123456789",
		ServerID:      "2001",
		PhoneNumber:   "09123456789",
		CustomerName:  "Aung Aung",
		Diamonds:      112,
		Price:         9000,
		PaymentMethod: "kpay",
		Status:        store.StatusPending,
		Priority:      store.PriorityLow,
	})

	assert.Equal(t, "New order ORD003 - 112 diamonds", msg.Subject)
	assert.Contains(t, msg.Body, "Price: 9000 MMK")
	assert.Contains(t, msg.Body, "Payment: KPAY")
	assert.Contains(t, msg.Body, "Game ID: 123456789 (2001)")
}
