package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// PostgresContactRepository implements ContactRepository using PostgreSQL.
type PostgresContactRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(pool *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{pool: pool}
}

// Create persists a contact message. This happens before any mail is sent;
// the stored row is the authoritative record of the contact attempt.
func (r *PostgresContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_messages (id, name, email, message, email_sent, email_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, msg.ID, msg.Name, msg.Email, msg.Message, msg.EmailSent, msg.EmailError, msg.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	return nil
}

// SetEmailResult records the outcome of the notification side effect.
func (r *PostgresContactRepository) SetEmailResult(ctx context.Context, id string, sent bool, sendError *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE contact_messages
		SET email_sent = $2, email_error = $3
		WHERE id = $1
	`, id, sent, sendError)

	if err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// List returns contact messages, newest first.
func (r *PostgresContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, message, email_sent, email_error, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.ContactMessage{}
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.EmailSent, &m.EmailError, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read contact messages: %w", err)
	}

	return messages, nil
}
