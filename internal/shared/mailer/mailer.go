package mailer

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text notification mail. A nil *Mailer is valid and
// drops every message, so callers never have to guard on configuration.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// FromEnv builds a Mailer from SMTP_* environment variables. Returns nil
// when SMTP_HOST is unset, which disables mail entirely.
func FromEnv(logger *zap.Logger) *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	l := zap.L().Named("mailer")
	if logger != nil {
		l = logger.Named("mailer")
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   os.Getenv("SMTP_FROM"),
		logger: l,
	}
}

func (m *Mailer) Send(to, subject, body string) {
	if m == nil {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		// Notification mail is best-effort; a delivery failure must never
		// fail the mutation that triggered it.
		m.logger.Warn("send mail failed", zap.String("to", to), zap.Error(err))
		return
	}
	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
}
