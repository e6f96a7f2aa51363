package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

func TestStatsService_Stats(t *testing.T) {
	ctx := context.Background()
	articleRepo := newFakeArticleRepo()
	categoryRepo := newFakeCategoryRepo()
	articleSvc := NewArticleService(articleRepo)
	categorySvc := NewCategoryService(categoryRepo, articleRepo)
	svc := NewStatsService(articleRepo, categoryRepo)

	t.Run("empty store", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &Stats{}, stats)
	})

	t.Run("counts split by status", func(t *testing.T) {
		require.NoError(t, categorySvc.Seed(ctx))

		for _, a := range []struct {
			title  string
			status string
		}{
			{"Un", domain.StatusPublished},
			{"Deux", domain.StatusPublished},
			{"Trois", domain.StatusDraft},
		} {
			_, err := articleSvc.Create(ctx, &domain.ArticleCreate{Title: a.title, Status: a.status})
			require.NoError(t, err)
		}

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.TotalArticles)
		assert.Equal(t, int64(2), stats.Published)
		assert.Equal(t, int64(1), stats.Drafts)
		assert.Equal(t, int64(5), stats.Categories)
	})
}
