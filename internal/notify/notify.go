//go:generate mockgen -source ./notify.go -destination=./mocks/notify.go -package=mock_notify

// Package notify delivers admin notifications over the channels enabled in
// the system settings.
package notify

import (
	"context"
	"errors"
)

var ErrNoRecipient = errors.New("no recipient configured")

type Message struct {
	Subject string
	Body    string
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
