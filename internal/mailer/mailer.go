// Package mailer sends outbound notification emails. Sending is always
// best-effort: callers persist first and record the send outcome afterwards.
package mailer

import (
	"context"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// Mailer sends a notification for a contact message.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error
}

// Noop is a Mailer that does nothing. Used when SMTP is unconfigured.
type Noop struct{}

// SendContactNotification always succeeds without sending anything.
func (Noop) SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error {
	return nil
}
