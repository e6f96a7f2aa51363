package service

import (
	"context"
	"fmt"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

// StatsService aggregates content counts for the admin dashboard.
type StatsService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(articleRepo repository.ArticleRepository, categoryRepo repository.CategoryRepository) *StatsService {
	return &StatsService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

// Stats returns aggregate counts. Always computed live.
func (s *StatsService) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.articleRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	published, err := s.articleRepo.CountByStatus(ctx, domain.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("count published: %w", err)
	}

	drafts, err := s.articleRepo.CountByStatus(ctx, domain.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}

	categories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	return &Stats{
		TotalArticles: total,
		Published:     published,
		Drafts:        drafts,
		Categories:    categories,
	}, nil
}
