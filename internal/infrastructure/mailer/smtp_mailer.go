// Package mailer delivers outbound correspondence over SMTP.
package mailer

import (
	"context"
	"errors"
	"strings"

	"console_comercial/internal/infrastructure/config"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

var ErrNoRecipients = errors.New("mailer: no recipients")

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer sender
	from   string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

// Send blocks until the SMTP exchange finishes or ctx is done. A cancelled
// send may still be delivered by the server.
func (m *SMTPMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			logging.For("mailer").WithError(err).WithField("subject", subject).Error("smtp send failed")
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
