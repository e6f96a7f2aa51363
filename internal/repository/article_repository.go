package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

const articleColumns = `id, title, slug, content, excerpt, image_url, category, tags, meta_description, status, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article. The unique index on slug is the authority
// on uniqueness: a violation surfaces as domain.ErrDuplicateSlug so the
// caller can retry with a suffixed slug.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, slug, content, excerpt, image_url, category, tags, meta_description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, article.ID, article.Title, article.Slug, article.Content, article.Excerpt,
		article.ImageURL, article.Category, article.Tags, article.MetaDescription,
		article.Status, article.CreatedAt, article.UpdatedAt)

	if err != nil {
		if isSlugConflict(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

// GetByID retrieves an article by ID. Returns (nil, nil) when absent.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = $1
	`, id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return article, nil
}

// GetPublishedBySlug retrieves a published article by slug. Drafts are
// invisible here regardless of slug match. Returns (nil, nil) when absent.
func (r *PostgresArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1 AND status = $2
	`, slug, domain.StatusPublished)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}

	return article, nil
}

// ListPublished lists published articles, newest first, optionally filtered
// by category, with offset/limit pagination.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, opts domain.ArticleListOptions) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = $1`
	args := []interface{}{domain.StatusPublished}

	if opts.Category != "" {
		query += ` AND category = $2
		ORDER BY created_at DESC OFFSET $3 LIMIT $4`
		args = append(args, opts.Category, opts.Offset, opts.Limit)
	} else {
		query += `
		ORDER BY created_at DESC OFFSET $2 LIMIT $3`
		args = append(args, opts.Offset, opts.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// CountPublished counts published articles, optionally within a category.
func (r *PostgresArticleRepository) CountPublished(ctx context.Context, category string) (int64, error) {
	var count int64
	var err error
	if category != "" {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM articles WHERE status = $1 AND category = $2`,
			domain.StatusPublished, category).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM articles WHERE status = $1`,
			domain.StatusPublished).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count published articles: %w", err)
	}
	return count, nil
}

// ListAll lists articles of any status for the admin surface, most recently
// updated first. An empty status means no filter.
func (r *PostgresArticleRepository) ListAll(ctx context.Context, status string) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// Recent lists the most recently created published articles.
func (r *PostgresArticleRepository) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, domain.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// Update writes the full article row. created_at is never touched.
// Returns domain.ErrNotFound for an unknown id and domain.ErrDuplicateSlug
// on a slug conflict.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, slug = $3, content = $4, excerpt = $5, image_url = $6,
			category = $7, tags = $8, meta_description = $9, status = $10, updated_at = $11
		WHERE id = $1
	`, article.ID, article.Title, article.Slug, article.Content, article.Excerpt,
		article.ImageURL, article.Category, article.Tags, article.MetaDescription,
		article.Status, article.UpdatedAt)

	if err != nil {
		if isSlugConflict(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes an article. Hard delete, no tombstone.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountAll counts every article regardless of status.
func (r *PostgresArticleRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// CountByStatus counts articles with the given status.
func (r *PostgresArticleRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles by status: %w", err)
	}
	return count, nil
}

// CountPublishedByCategory counts published articles referencing a category
// slug. Always a live query so counts never lag an article status change.
func (r *PostgresArticleRepository) CountPublishedByCategory(ctx context.Context, categorySlug string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles WHERE category = $1 AND status = $2`,
		categorySlug, domain.StatusPublished).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles in category: %w", err)
	}
	return count, nil
}

// scanArticle scans one article row.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.ImageURL,
		&a.Category, &a.Tags, &a.MetaDescription, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

// collectArticles drains a result set of article rows.
func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}

// isSlugConflict reports whether err is a unique violation on a slug index.
func isSlugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "slug")
}
