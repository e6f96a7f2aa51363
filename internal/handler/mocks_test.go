package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockArticleService struct {
	mock.Mock
}

func (m *mockArticleService) Create(ctx context.Context, input *domain.ArticleCreate) (*domain.Article, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticleService) Update(ctx context.Context, id string, update *domain.ArticleUpdate) (*domain.Article, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticleService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockArticleService) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticleService) ListPublished(ctx context.Context, opts domain.ArticleListOptions) ([]domain.Article, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleService) ListAll(ctx context.Context, status string) ([]domain.Article, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *mockArticleService) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryWithCount), args.Error(1)
}

func (m *mockCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, input *domain.CategoryCreate) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) Seed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockContactService struct {
	mock.Mock
}

func (m *mockContactService) Submit(ctx context.Context, input *domain.ContactCreate) (*domain.ContactMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockContactService) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) Create(ctx context.Context, input *domain.ReviewCreate) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewService) List(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}
