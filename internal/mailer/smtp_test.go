package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

func TestSMTPMailer_SendContactNotification(t *testing.T) {
	cfg := SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "noreply@artimonbike.com",
		To:   "contact@artimonbike.com",
	}

	msg := &domain.ContactMessage{
		ID:      "msg-1",
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Message: "Avez-vous des vélos cargo?",
	}

	t.Run("builds and sends the notification", func(t *testing.T) {
		m := NewSMTPMailer(cfg)

		var gotAddr, gotFrom string
		var gotTo []string
		var gotBody []byte
		m.send = func(addr string, a smtp.Auth, from string, to []string, body []byte) error {
			gotAddr, gotFrom, gotTo, gotBody = addr, from, to, body
			return nil
		}

		require.NoError(t, m.SendContactNotification(context.Background(), msg))

		assert.Equal(t, "mail.example.com:587", gotAddr)
		assert.Equal(t, "noreply@artimonbike.com", gotFrom)
		assert.Equal(t, []string{"contact@artimonbike.com"}, gotTo)

		body := string(gotBody)
		assert.Contains(t, body, "Subject: Nouveau message de Jean Dupont")
		assert.Contains(t, body, "Reply-To: jean@example.com")
		assert.Contains(t, body, "Avez-vous des vélos cargo?")
	})

	t.Run("send failure is wrapped and returned", func(t *testing.T) {
		m := NewSMTPMailer(cfg)
		m.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		err := m.SendContactNotification(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("cancelled context sends nothing", func(t *testing.T) {
		m := NewSMTPMailer(cfg)
		called := false
		m.send = func(string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := m.SendContactNotification(ctx, msg)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestNoop(t *testing.T) {
	var m Mailer = Noop{}
	assert.NoError(t, m.SendContactNotification(context.Background(), &domain.ContactMessage{}))
}
