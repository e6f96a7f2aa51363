package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// PostgresReviewRepository implements ReviewRepository using PostgreSQL.
type PostgresReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository.
func NewPostgresReviewRepository(pool *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

// Create inserts a review.
func (r *PostgresReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reviews (id, name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, review.ID, review.Name, review.Rating, review.Comment, review.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// List returns reviews, newest first.
func (r *PostgresReviewRepository) List(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, rating, comment, created_at
		FROM reviews
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Name, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}

	return reviews, nil
}

// Delete removes a review.
func (r *PostgresReviewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
