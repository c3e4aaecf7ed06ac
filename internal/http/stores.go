package http

import (
	"context"

	"github.com/myapp/bookstore/internal/auth"
	"github.com/myapp/bookstore/internal/catalog"
	"github.com/myapp/bookstore/internal/entities"
)

// Each controller depends only on the operations it calls.

// BookQuerier runs catalog queries.
type BookQuerier interface {
	Query(ctx context.Context, q catalog.Query) ([]entities.Book, error)
}

// BookStore creates and deletes books.
type BookStore interface {
	CreateBook(ctx context.Context, book *entities.Book) error
	DeleteBook(ctx context.Context, id uint) (bool, error)
}

type FaqStore interface {
	CreateFaq(ctx context.Context, faq *entities.Faq) error
	GetAllFaqs(ctx context.Context) ([]entities.Faq, error)
	SearchByQuestion(ctx context.Context, keyword string) ([]entities.Faq, error)
	DeleteFaq(ctx context.Context, id uint) (bool, error)
}

type TranslationStore interface {
	GetTranslations(ctx context.Context, language string) (map[string]string, error)
}

type FavouriteManager interface {
	AddFavorite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, bookID uint) error
	ListFavoriteBooks(ctx context.Context, userID uint) ([]entities.Book, error)
}

type DownloadManager interface {
	AddDownload(ctx context.Context, bookID, userID uint) (*entities.Download, error)
	ListDownloads(ctx context.Context, userID uint) ([]entities.Download, error)
	DeleteDownload(ctx context.Context, id uint) error
}

type ReviewManager interface {
	CreateReview(ctx context.Context, bookID, userID uint, rating int, comment string) (*entities.Review, error)
	UpdateReview(ctx context.Context, id uint, rating int, comment string) (*entities.Review, error)
	ListReviews(ctx context.Context, bookID uint) ([]entities.Review, error)
	ListAllReviews(ctx context.Context) ([]entities.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

// AccountService covers registration, verification, login and profiles.
type AccountService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*entities.User, error)
	Confirm(ctx context.Context, token string) (*entities.User, error)
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	GetProfile(ctx context.Context, id uint) (*entities.User, error)
	UpdateProfile(ctx context.Context, id uint, in auth.ProfileInput) (*entities.User, error)
}

// LoginThrottle is satisfied by *auth.LoginThrottle.
type LoginThrottle interface {
	Check(ip, username string) error
	Observe(ip, username string, loginErr error)
}
