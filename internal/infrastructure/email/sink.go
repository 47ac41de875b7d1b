// Package email mirrors inbox notifications to SMTP. Delivery is
// best-effort; the dispatcher logs failures and moves on.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/shared/config"
)

type SMTPSink struct {
	cfg       *config.EmailConfig
	dialer    *gomail.Dialer
	directory identity.Directory
}

func NewSMTPSink(cfg *config.EmailConfig, directory identity.Directory) *SMTPSink {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSink{
		cfg:       cfg,
		dialer:    dialer,
		directory: directory,
	}
}

// Send resolves the recipient's address through the identity directory and
// delivers the notification text as a plain-text mail.
func (s *SMTPSink) Send(ctx context.Context, userID uint, message string) error {
	user, err := s.directory.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve notification recipient %d: %w", userID, err)
	}
	if user == nil || user.Email == "" {
		return fmt.Errorf("no email address on record for user %d", userID)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetAddressHeader("To", user.Email, user.DisplayName)
	m.SetHeader("Subject", "Ticket system notification")
	m.SetBody("text/plain", message)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email to %s: %w", user.Email, err)
	}

	return nil
}

// NoopSink satisfies the sink contract when email delivery is disabled.
type NoopSink struct{}

func NewNoopSink() *NoopSink { return &NoopSink{} }

func (s *NoopSink) Send(_ context.Context, _ uint, _ string) error { return nil }
