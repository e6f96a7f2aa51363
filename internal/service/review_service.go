package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

// ReviewService implements the customer-reviews feed.
type ReviewService struct {
	repo repository.ReviewRepository
	now  func() time.Time
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
		now:  time.Now,
	}
}

// Create stores a submitted review.
func (s *ReviewService) Create(ctx context.Context, input *domain.ReviewCreate) (*domain.Review, error) {
	review := &domain.Review{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

// List returns reviews, newest first.
func (s *ReviewService) List(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes a review (admin only).
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
