package reviews

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myapp/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "reviews.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Book{}, &entities.User{}, &entities.Review{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db, NewRepository(db)
}

func addReviews(t *testing.T, repo *Repository, bookID uint, ratings ...int) {
	t.Helper()
	for _, rating := range ratings {
		require.NoError(t, repo.CreateReview(context.Background(), &entities.Review{
			BookID: bookID,
			UserID: 1,
			Rating: rating,
		}))
	}
}

func TestRepository_AverageRatings(t *testing.T) {
	_, repo := setupTestDB(t)
	addReviews(t, repo, 1, 5, 3, 4)
	addReviews(t, repo, 2, 4, 5)

	averages, err := repo.AverageRatings(context.Background(), []uint{1, 2, 3})

	require.NoError(t, err)
	assert.InDelta(t, 4.0, averages[1], 1e-9)
	assert.InDelta(t, 4.5, averages[2], 1e-9)
	_, hasThird := averages[3]
	assert.False(t, hasThird)
}

func TestRepository_AverageRatings_NoIDs(t *testing.T) {
	_, repo := setupTestDB(t)

	averages, err := repo.AverageRatings(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, averages)
}

func TestRepository_GetReviewsByBookID(t *testing.T) {
	_, repo := setupTestDB(t)
	addReviews(t, repo, 1, 5, 3)
	addReviews(t, repo, 2, 1)

	reviews, err := repo.GetReviewsByBookID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.False(t, reviews[0].CreatedAt.IsZero())
}

func TestRepository_SaveAndDeleteReview(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	addReviews(t, repo, 1, 2)

	review, err := repo.GetReviewByID(ctx, 1)
	require.NoError(t, err)
	review.Rating = 5
	review.Comment = "changed my mind"
	require.NoError(t, repo.SaveReview(ctx, review))

	reloaded, err := repo.GetReviewByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Rating)
	assert.Equal(t, "changed my mind", reloaded.Comment)

	deleted, err := repo.DeleteReview(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteReview(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetReviewByID(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
