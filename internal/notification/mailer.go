package notification

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"virtualgrow-server/pkg/config"
)

// Mailer delivers password-reset notifications. The auth usecase owns the
// token lifecycle; delivery is this collaborator's problem.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, resetToken string) error
}

// NewMailer returns an SMTP mailer when a host is configured, otherwise a
// log-only mailer so development deployments keep working.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		log.Println("[Mailer] SMTP_HOST not configured, reset emails will be logged only")
		return &logMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg *config.Config
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, resetToken)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password Reset Request\r\n\r\n"+
			"Click the following link to reset your password: %s\r\n",
		m.cfg.SMTPUser, email, resetURL))

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, m.cfg.SMTPUser, []string{email}, msg)
}

type logMailer struct{}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	log.Printf("[Mailer] Password reset requested for %s (token %s)", email, resetToken)
	return nil
}
