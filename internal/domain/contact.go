package domain

import "time"

// ContactMessage represents a message submitted via the contact form.
// The stored record is authoritative; EmailSent and EmailError only describe
// the outcome of the best-effort notification.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	EmailSent  bool      `json:"email_sent"`
	EmailError *string   `json:"email_error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ContactCreate carries the fields accepted from the contact form.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
