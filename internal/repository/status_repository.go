package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// PostgresStatusCheckRepository implements StatusCheckRepository using PostgreSQL.
type PostgresStatusCheckRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStatusCheckRepository creates a new PostgresStatusCheckRepository.
func NewPostgresStatusCheckRepository(pool *pgxpool.Pool) *PostgresStatusCheckRepository {
	return &PostgresStatusCheckRepository{pool: pool}
}

// Create inserts a status check.
func (r *PostgresStatusCheckRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES ($1, $2, $3)
	`, check.ID, check.ClientName, check.Timestamp)

	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}

	return nil
}

// List returns status checks, newest first, capped at limit.
func (r *PostgresStatusCheckRepository) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	checks := []domain.StatusCheck{}
	for rows.Next() {
		var check domain.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read status checks: %w", err)
	}

	return checks, nil
}
