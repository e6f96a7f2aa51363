package repository

import (
	"context"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListPublished(ctx context.Context, opts domain.ArticleListOptions) ([]domain.Article, error)
	CountPublished(ctx context.Context, category string) (int64, error)
	ListAll(ctx context.Context, status string) ([]domain.Article, error)
	Recent(ctx context.Context, limit int) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountPublishedByCategory(ctx context.Context, categorySlug string) (int64, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context, limit, offset int) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines methods for contact-message data access.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	SetEmailResult(ctx context.Context, id string, sent bool, sendError *string) error
	List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error)
}

// StatusCheckRepository defines methods for status-check data access.
type StatusCheckRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]domain.StatusCheck, error)
}
