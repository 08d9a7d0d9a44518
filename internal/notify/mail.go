package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// MailNotifier mails the address returned by recipient, which is looked up on
// every send so settings changes apply immediately.
type MailNotifier struct {
	sender    mailSender
	from      string
	recipient func() string
}

func NewMailNotifier(cfg SMTPConfig, recipient func() string) *MailNotifier {
	return &MailNotifier{
		sender:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		recipient: recipient,
	}
}

func (n *MailNotifier) Notify(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to := n.recipient()
	if to == "" {
		return ErrNoRecipient
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
