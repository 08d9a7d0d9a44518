package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/metrics"
	"github.com/sevenam/diamondstore/internal/store"
)

const (
	channelPush  = "push"
	channelEmail = "email"
	channelSMS   = "sms"
)

// Dispatcher fans a message out to the channels switched on in the current
// settings. Channel failures are logged and never returned.
type Dispatcher struct {
	settings func() store.SystemSettings
	push     Notifier
	email    Notifier
	logger   *zap.Logger
}

// NewDispatcher accepts nil channels; a flag without a channel is skipped.
func NewDispatcher(settings func() store.SystemSettings, push, email Notifier, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		push:     push,
		email:    email,
		logger:   logger.With(zap.String("component", "notify")),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, msg Message) error {
	flags := d.settings().Notifications

	if flags.Push {
		d.send(ctx, channelPush, d.push, msg)
	}
	if flags.Email {
		d.send(ctx, channelEmail, d.email, msg)
	}
	if flags.SMS {
		d.send(ctx, channelSMS, nil, msg)
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, channel string, n Notifier, msg Message) {
	if n == nil {
		metrics.NotificationsTotal.WithLabelValues(channel, "skipped").Inc()
		d.logger.Debug("no notifier configured", zap.String("channel", channel))
		return
	}
	if err := n.Notify(ctx, msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues(channel, "error").Inc()
		d.logger.Error("failed to send notification",
			zap.String("channel", channel),
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return
	}
	metrics.NotificationsTotal.WithLabelValues(channel, "sent").Inc()
}
