package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// SMTPConfig holds the connection settings for the SMTP sender.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// SMTPMailer sends contact notifications over SMTP.
type SMTPMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// SendContactNotification emails the contact message to the configured
// recipient. Failures are returned to the caller, never retried here.
func (m *SMTPMailer) SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: Nouveau message de %s\r\n", msg.Name)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Nom: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	return nil
}
