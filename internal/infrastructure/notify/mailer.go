package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Manzp111/smartville/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Mailer delivers a single rendered message to one address
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP relay
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. The context is accepted for interface
// symmetry; net/smtp does not support cancellation mid-send.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}

// LogMailer writes messages to the log instead of sending them.
// Used in development and when no SMTP relay is configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("mail")}
}

// Send logs the message
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("mail delivery (log transport)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
