package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

// defaultCategories are seeded at startup when absent.
var defaultCategories = []domain.CategoryCreate{
	{Name: "Location", Slug: "location", Description: strPtr("Articles sur la location de vélos")},
	{Name: "Réparation", Slug: "reparation", Description: strPtr("Conseils de réparation et entretien")},
	{Name: "Parcours", Slug: "parcours", Description: strPtr("Itinéraires et balades à vélo")},
	{Name: "Conseils", Slug: "conseils", Description: strPtr("Conseils pratiques pour cyclistes")},
	{Name: "Actualités", Slug: "actualites", Description: strPtr("Actualités d'Artimon Bike")},
}

func strPtr(s string) *string { return &s }

// CategoryService implements category CRUD and the per-category
// published-article aggregation.
type CategoryService struct {
	repo        repository.CategoryRepository
	articleRepo repository.ArticleRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, articleRepo repository.ArticleRepository) *CategoryService {
	return &CategoryService{
		repo:        repo,
		articleRepo: articleRepo,
	}
}

// ListWithCounts returns all categories annotated with a live count of
// published articles. One count query per category; always consistent with
// current article state.
func (s *CategoryService) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]domain.CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		count, err := s.articleRepo.CountPublishedByCategory(ctx, cat.Slug)
		if err != nil {
			return nil, fmt.Errorf("count articles for category %s: %w", cat.Slug, err)
		}
		result = append(result, domain.CategoryWithCount{
			Category:     cat,
			ArticleCount: count,
		})
	}

	return result, nil
}

// List returns all categories without counts (admin surface).
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create creates a category. The slug is supplied by the caller; a
// duplicate is rejected, never suffixed.
func (s *CategoryService) Create(ctx context.Context, input *domain.CategoryCreate) (*domain.Category, error) {
	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

// Delete hard-deletes a category. Articles keep their now-dangling
// category reference; that is accepted behavior, not an error.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Seed inserts the default categories, skipping any whose slug already
// exists.
func (s *CategoryService) Seed(ctx context.Context) error {
	for _, input := range defaultCategories {
		_, err := s.Create(ctx, &input)
		if errors.Is(err, domain.ErrDuplicateSlug) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed category %s: %w", input.Slug, err)
		}
	}
	logger.Info("Blog categories initialized", slog.Int("count", len(defaultCategories)))
	return nil
}
