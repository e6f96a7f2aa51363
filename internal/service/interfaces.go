package service

import (
	"context"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// ArticleServiceInterface defines article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create creates an article, deriving its slug from the title.
	Create(ctx context.Context, input *domain.ArticleCreate) (*domain.Article, error)
	// Update applies a partial update; nil fields are left unchanged.
	Update(ctx context.Context, id string, update *domain.ArticleUpdate) (*domain.Article, error)
	// Delete hard-deletes an article.
	Delete(ctx context.Context, id string) error
	// GetByID returns an article of any status.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// GetPublishedBySlug returns a published article by slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// ListPublished returns published articles and the matching total.
	ListPublished(ctx context.Context, opts domain.ArticleListOptions) ([]domain.Article, int64, error)
	// ListAll returns articles of any status for the admin surface.
	ListAll(ctx context.Context, status string) ([]domain.Article, error)
	// Recent returns the most recent published articles.
	Recent(ctx context.Context, limit int) ([]domain.Article, error)
}

// CategoryServiceInterface defines category operations.
type CategoryServiceInterface interface {
	// ListWithCounts returns categories with live published-article counts.
	ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error)
	// List returns categories without counts.
	List(ctx context.Context) ([]domain.Category, error)
	// Create creates a category; a duplicate slug is rejected.
	Create(ctx context.Context, input *domain.CategoryCreate) (*domain.Category, error)
	// Delete hard-deletes a category without cascading to articles.
	Delete(ctx context.Context, id string) error
	// Seed inserts the default categories when absent.
	Seed(ctx context.Context) error
}

// ReviewServiceInterface defines review operations.
type ReviewServiceInterface interface {
	Create(ctx context.Context, input *domain.ReviewCreate) (*domain.Review, error)
	List(ctx context.Context, limit, offset int) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error
}

// ContactServiceInterface defines contact-form operations.
type ContactServiceInterface interface {
	// Submit persists the message, then attempts the notification email.
	// The returned message carries the send outcome; persistence errors are
	// the only errors returned.
	Submit(ctx context.Context, input *domain.ContactCreate) (*domain.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error)
}

// Stats aggregates content counts for the admin dashboard.
type Stats struct {
	TotalArticles int64 `json:"total_articles"`
	Published     int64 `json:"published"`
	Drafts        int64 `json:"drafts"`
	Categories    int64 `json:"categories"`
}

// StatsServiceInterface defines the stats aggregation.
type StatsServiceInterface interface {
	Stats(ctx context.Context) (*Stats, error)
}
