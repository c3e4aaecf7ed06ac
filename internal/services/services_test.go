package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/database/books"
	"github.com/myapp/bookstore/internal/database/downloads"
	"github.com/myapp/bookstore/internal/database/favourites"
	"github.com/myapp/bookstore/internal/database/reviews"
	"github.com/myapp/bookstore/internal/database/users"
	"github.com/myapp/bookstore/internal/entities"
)

type fixture struct {
	db        *gorm.DB
	books     *books.Repository
	users     *users.Repository
	favs      *FavouriteService
	downloads *DownloadService
	reviews   *ReviewService
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "services.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Book{}, &entities.User{}, &entities.Review{},
		&entities.Favorite{}, &entities.Download{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	bookRepo := books.NewRepository(db)
	userRepo := users.NewRepository(db)

	f := &fixture{
		db:        db,
		books:     bookRepo,
		users:     userRepo,
		favs:      NewFavouriteService(favourites.NewRepository(db), bookRepo, userRepo),
		downloads: NewDownloadService(downloads.NewRepository(db), bookRepo),
		reviews:   NewReviewService(reviews.NewRepository(db), bookRepo, userRepo),
	}

	ctx := context.Background()
	for i, title := range []string{"War and Peace", "The Little Prince", "Anna Karenina"} {
		require.NoError(t, bookRepo.CreateBook(ctx, &entities.Book{Title: title, Year: 1869 + i}))
	}
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		require.NoError(t, userRepo.CreateUser(ctx, &entities.User{
			Username: name,
			Email:    name + "@example.com",
			Password: "x",
		}))
	}
	return f
}

func TestFavouriteService_AddTwiceFails(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fav, err := f.favs.AddFavorite(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotZero(t, fav.ID)

	_, err = f.favs.AddFavorite(ctx, 1, 2)
	assert.ErrorIs(t, err, apperror.ErrAlreadyFavorited)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestFavouriteService_RemoveTwiceFails(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.favs.AddFavorite(ctx, 1, 2)
	require.NoError(t, err)

	require.NoError(t, f.favs.RemoveFavorite(ctx, 1, 2))

	err = f.favs.RemoveFavorite(ctx, 1, 2)
	assert.ErrorIs(t, err, apperror.ErrFavoriteNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestFavouriteService_RequiresUserAndBook(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.favs.AddFavorite(ctx, 99, 1)
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)

	_, err = f.favs.AddFavorite(ctx, 1, 99)
	assert.ErrorIs(t, err, apperror.ErrBookNotFound)

	_, err = f.favs.ListFavoriteBooks(ctx, 99)
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestFavouriteService_ListReturnsBooks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.favs.AddFavorite(ctx, 1, 3)
	require.NoError(t, err)
	_, err = f.favs.AddFavorite(ctx, 1, 1)
	require.NoError(t, err)
	_, err = f.favs.AddFavorite(ctx, 2, 2)
	require.NoError(t, err)

	got, err := f.favs.ListFavoriteBooks(ctx, 1)

	require.NoError(t, err)
	titles := []string{}
	for _, b := range got {
		titles = append(titles, b.Title)
	}
	assert.ElementsMatch(t, []string{"Anna Karenina", "War and Peace"}, titles)
}

func TestDownloadService_SamePairTwiceFails(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f.downloads.now = func() time.Time { return fixed }

	d, err := f.downloads.AddDownload(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, fixed, d.DownloadDate)

	_, err = f.downloads.AddDownload(ctx, 3, 4)
	assert.ErrorIs(t, err, apperror.ErrAlreadyDownloaded)

	_, err = f.downloads.AddDownload(ctx, 3, 1)
	assert.NoError(t, err)
}

func TestDownloadService_BookMustExist(t *testing.T) {
	f := setup(t)

	_, err := f.downloads.AddDownload(context.Background(), 42, 1)

	assert.ErrorIs(t, err, apperror.ErrBookNotFound)
}

func TestDownloadService_ListAndDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	d, err := f.downloads.AddDownload(ctx, 1, 2)
	require.NoError(t, err)

	list, err := f.downloads.ListDownloads(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].BookID)

	require.NoError(t, f.downloads.DeleteDownload(ctx, d.ID))
	assert.ErrorIs(t, f.downloads.DeleteDownload(ctx, d.ID), apperror.ErrDownloadNotFound)
}

func TestReviewService_Create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f.reviews.now = func() time.Time { return fixed }

	review, err := f.reviews.CreateReview(ctx, 1, 2, 5, "A classic")

	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, fixed, review.CreatedAt)

	_, err = f.reviews.CreateReview(ctx, 99, 2, 5, "")
	assert.ErrorIs(t, err, apperror.ErrBookNotFound)

	_, err = f.reviews.CreateReview(ctx, 1, 99, 5, "")
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestReviewService_Update(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	review, err := f.reviews.CreateReview(ctx, 1, 2, 2, "meh")
	require.NoError(t, err)

	updated, err := f.reviews.UpdateReview(ctx, review.ID, 4, "grew on me")
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	list, err := f.reviews.ListReviews(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "grew on me", list[0].Comment)

	_, err = f.reviews.UpdateReview(ctx, 404, 1, "")
	assert.ErrorIs(t, err, apperror.ErrReviewNotFound)
}

func TestReviewService_ListAllAndDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first, err := f.reviews.CreateReview(ctx, 1, 1, 5, "")
	require.NoError(t, err)
	_, err = f.reviews.CreateReview(ctx, 2, 1, 3, "")
	require.NoError(t, err)

	all, err := f.reviews.ListAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, f.reviews.DeleteReview(ctx, first.ID))
	assert.ErrorIs(t, f.reviews.DeleteReview(ctx, first.ID), apperror.ErrReviewNotFound)
}
