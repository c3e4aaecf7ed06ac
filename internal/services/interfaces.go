package services

import (
	"context"

	"github.com/myapp/bookstore/internal/entities"
)

// BookLookup answers whether a book is stored.
type BookLookup interface {
	BookExists(ctx context.Context, id uint) (bool, error)
}

// UserLookup answers whether a user is stored.
type UserLookup interface {
	UserExists(ctx context.Context, id uint) (bool, error)
}

// FavouriteStore persists (user, book) favourite pairs.
type FavouriteStore interface {
	CreateFavourite(ctx context.Context, favourite *entities.Favorite) error
	GetFavourite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error)
	DeleteFavourite(ctx context.Context, userID, bookID uint) (bool, error)
	GetFavouriteBooks(ctx context.Context, userID uint) ([]entities.Book, error)
}

// DownloadStore persists download records.
type DownloadStore interface {
	CreateDownload(ctx context.Context, download *entities.Download) error
	DownloadExists(ctx context.Context, bookID, userID uint) (bool, error)
	GetDownloadsByUserID(ctx context.Context, userID uint) ([]entities.Download, error)
	DeleteDownload(ctx context.Context, id uint) (bool, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *entities.Review) error
	SaveReview(ctx context.Context, review *entities.Review) error
	GetReviewByID(ctx context.Context, id uint) (*entities.Review, error)
	GetAllReviews(ctx context.Context) ([]entities.Review, error)
	GetReviewsByBookID(ctx context.Context, bookID uint) ([]entities.Review, error)
	DeleteReview(ctx context.Context, id uint) (bool, error)
}
