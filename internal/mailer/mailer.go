// Package mailer delivers confirmation emails through the configured SMTP
// relay. Delivery is best-effort: the caller gets a boolean, never an error,
// and a failed send must not disturb the already-committed record.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/texasfightcollective/fight-night-api/internal/config"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/logger"
)

// Sender is the notification contract used by the intake service.
// Implementations report success as a plain boolean; failures are logged
// inside the implementation and never propagated.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) bool
}

// Mailer sends HTML email over an authenticated STARTTLS session. One
// connection per message, released on every exit path; no pooling.
type Mailer struct {
	cfg         config.EmailConfig
	dialTimeout time.Duration
}

// New creates a Mailer for the given relay configuration.
func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg, dialTimeout: 15 * time.Second}
}

// Send transmits one HTML message to a single recipient. Returns true only
// if the relay accepted the message; any connect/upgrade/auth/write failure
// is logged and reported as false.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) bool {
	if err := m.send(ctx, to, subject, htmlBody); err != nil {
		logger.Error("confirmation email failed",
			"to", to,
			"subject", subject,
			"relay", m.cfg.Addr(),
			"error", err.Error(),
		)
		return false
	}
	logger.Info("confirmation email sent", "to", to, "subject", subject)
	return true
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	dialer := net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.cfg.Addr())
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	// Close releases the connection on every remaining exit path. Quit below
	// also closes; the double close is harmless.
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return fmt.Errorf("relay %s does not offer STARTTLS", m.cfg.Addr())
	}
	if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		m.cfg.From, to, subject, htmlBody)
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}

	return c.Quit()
}
