package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/metrics"
	"github.com/Titanium1971/artimon-backend/internal/repository"
	"github.com/Titanium1971/artimon-backend/internal/slug"
)

// ArticleService implements article CRUD with slug identity management.
// Slug uniqueness is enforced by the store's unique index; this service
// resolves conflicts with a single suffix retry.
type ArticleService struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
		now:  time.Now,
	}
}

// Create creates an article. The slug is derived from the title; when the
// insert hits the unique index, the slug is suffixed once and retried.
// A second collision after suffixing is not defended against.
func (s *ArticleService) Create(ctx context.Context, input *domain.ArticleCreate) (*domain.Article, error) {
	base := slug.Generate(input.Title)
	if base == "" {
		return nil, domain.ErrEmptySlug
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := s.now().UTC()
	article := &domain.Article{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Slug:            base,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		ImageURL:        input.ImageURL,
		Category:        input.Category,
		Tags:            tags,
		MetaDescription: input.MetaDescription,
		Status:          input.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.repo.Create(ctx, article)
	if errors.Is(err, domain.ErrDuplicateSlug) {
		metrics.SlugCollisionsTotal.Inc()
		article.Slug = slug.WithSuffix(base)
		logger.Info("Slug collision on create, retrying with suffix",
			slog.String("slug", base),
			slog.String("suffixed", article.Slug))
		err = s.repo.Create(ctx, article)
	}
	if err != nil {
		metrics.ArticleMutationsTotal.WithLabelValues("create", "failure").Inc()
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.ArticleMutationsTotal.WithLabelValues("create", "success").Inc()
	return article, nil
}

// Update applies a partial update. Nil fields leave the stored value
// unchanged; a title change recomputes the slug through the same
// conflict/suffix path as creation. updated_at always advances,
// created_at never changes.
func (s *ArticleService) Update(ctx context.Context, id string, update *domain.ArticleUpdate) (*domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}

	titleChanged := false
	if update.Title != nil && *update.Title != article.Title {
		article.Title = *update.Title
		titleChanged = true
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.Excerpt != nil {
		article.Excerpt = *update.Excerpt
	}
	if update.ImageURL != nil {
		article.ImageURL = update.ImageURL
	}
	if update.Category != nil {
		article.Category = *update.Category
	}
	if update.Tags != nil {
		article.Tags = *update.Tags
	}
	if update.MetaDescription != nil {
		article.MetaDescription = update.MetaDescription
	}
	if update.Status != nil {
		article.Status = *update.Status
	}

	base := article.Slug
	if titleChanged {
		base = slug.Generate(article.Title)
		if base == "" {
			return nil, domain.ErrEmptySlug
		}
		article.Slug = base
	}

	article.UpdatedAt = s.now().UTC()

	err = s.repo.Update(ctx, article)
	if titleChanged && errors.Is(err, domain.ErrDuplicateSlug) {
		metrics.SlugCollisionsTotal.Inc()
		article.Slug = slug.WithSuffix(base)
		logger.Info("Slug collision on update, retrying with suffix",
			slog.String("slug", base),
			slog.String("suffixed", article.Slug))
		err = s.repo.Update(ctx, article)
	}
	if err != nil {
		metrics.ArticleMutationsTotal.WithLabelValues("update", "failure").Inc()
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	metrics.ArticleMutationsTotal.WithLabelValues("update", "success").Inc()
	return article, nil
}

// Delete hard-deletes an article.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		metrics.ArticleMutationsTotal.WithLabelValues("delete", "failure").Inc()
		return fmt.Errorf("delete article: %w", err)
	}
	metrics.ArticleMutationsTotal.WithLabelValues("delete", "success").Inc()
	return nil
}

// GetByID returns an article of any status.
func (s *ArticleService) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// GetPublishedBySlug returns a published article; drafts stay invisible.
func (s *ArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// ListPublished returns a page of published articles with the total count
// for the same filter.
func (s *ArticleService) ListPublished(ctx context.Context, opts domain.ArticleListOptions) ([]domain.Article, int64, error) {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	articles, err := s.repo.ListPublished(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list published articles: %w", err)
	}

	total, err := s.repo.CountPublished(ctx, opts.Category)
	if err != nil {
		return nil, 0, fmt.Errorf("count published articles: %w", err)
	}

	return articles, total, nil
}

// ListAll returns articles of any status, optionally filtered by status.
func (s *ArticleService) ListAll(ctx context.Context, status string) ([]domain.Article, error) {
	articles, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Recent returns the most recent published articles.
func (s *ArticleService) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 5
	}
	articles, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return articles, nil
}
