package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Create inserts a category. A slug conflict surfaces as
// domain.ErrDuplicateSlug; categories are never suffixed, the caller
// rejects the create instead.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, slug, description)
		VALUES ($1, $2, $3, $4)
	`, category.ID, category.Name, category.Slug, category.Description)

	if err != nil {
		if isSlugConflict(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// List returns all categories ordered by name.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug, description
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	return categories, nil
}

// Delete removes a category. Articles referencing its slug are left alone;
// a dangling reference is accepted behavior.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count counts all categories.
func (r *PostgresCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
