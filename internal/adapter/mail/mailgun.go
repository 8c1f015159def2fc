package mail

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

// Config holds Mailgun credentials. An empty Domain or APIKey disables
// sending entirely, which is the expected setup for local development.
type Config struct {
	Domain string
	APIKey string
	Sender string
}

// WelcomeMailer sends the post-registration welcome email via Mailgun.
type WelcomeMailer struct {
	cfg Config
	log *zap.Logger
}

// NewWelcomeMailer creates a new Mailgun-backed welcome mailer.
func NewWelcomeMailer(cfg Config, log *zap.Logger) *WelcomeMailer {
	return &WelcomeMailer{cfg: cfg, log: log}
}

func (m *WelcomeMailer) enabled() bool {
	return m.cfg.Domain != "" && m.cfg.APIKey != ""
}

// SendWelcomeEmail sends a welcome message to a newly registered user. When
// Mailgun is not configured the call is a no-op.
func (m *WelcomeMailer) SendWelcomeEmail(ctx context.Context, address, name string) error {
	if !m.enabled() {
		m.log.Debug("mailer not configured, skipping welcome email", zap.String("to", address))
		return nil
	}

	client := mg.NewMailgun(m.cfg.Domain, m.cfg.APIKey)
	subject := "Welcome!"
	body := fmt.Sprintf("Hi %s,\n\nWelcome aboard! Your account is ready to use.\n", name)
	msg := client.NewMessage(m.cfg.Sender, subject, body, address)

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if _, _, err := client.Send(c, msg); err != nil {
		return err
	}

	m.log.Info("welcome email sent", zap.String("to", address))
	return nil
}
