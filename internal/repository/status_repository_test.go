package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

func TestPostgresStatusCheckRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresStatusCheckRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and list newest first with cap", func(t *testing.T) {
		testDB.TruncateTables(t, "status_checks")

		base := time.Now().UTC().Truncate(time.Microsecond)
		for i := 0; i < 5; i++ {
			check := &domain.StatusCheck{
				ID:         uuid.New().String(),
				ClientName: fmt.Sprintf("client-%d", i),
				Timestamp:  base.Add(time.Duration(i) * time.Second),
			}
			require.NoError(t, repo.Create(ctx, check))
		}

		checks, err := repo.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, checks, 3)
		assert.Equal(t, "client-4", checks[0].ClientName)
		assert.Equal(t, "client-3", checks[1].ClientName)
	})
}
