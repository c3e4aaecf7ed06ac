// Package favourites provides database operations for a user's favourite books.
//
// A (user, book) pair appears at most once; the composite unique index on the
// favorites table rejects a second insert with gorm.ErrDuplicatedKey.
//
// # Usage
//
//	repo := favourites.NewRepository(db)
//	books, err := repo.GetFavouriteBooks(ctx, userID)
package favourites

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all favourites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFavourite(ctx context.Context, favourite *entities.Favorite) error {
	if err := r.db.WithContext(ctx).Omit("User", "Book").Create(favourite).Error; err != nil {
		return fmt.Errorf("create favourite (user %d, book %d): %w", favourite.UserID, favourite.BookID, err)
	}
	return nil
}

// GetFavourite returns gorm.ErrRecordNotFound when the pair is not favourited.
func (r *Repository) GetFavourite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error) {
	var favourite entities.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&favourite).Error
	if err != nil {
		return nil, err
	}
	return &favourite, nil
}

// DeleteFavourite removes the pair. It reports false when there was nothing to delete.
func (r *Repository) DeleteFavourite(ctx context.Context, userID, bookID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&entities.Favorite{})
	if result.Error != nil {
		return false, fmt.Errorf("delete favourite (user %d, book %d): %w", userID, bookID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetFavouriteBooks returns the favourited books of a user in the order they were added.
func (r *Repository) GetFavouriteBooks(ctx context.Context, userID uint) ([]entities.Book, error) {
	var favourites []entities.Favorite
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favourites).Error
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(favourites))
	for _, f := range favourites {
		if f.Book.ID == 0 {
			continue
		}
		books = append(books, f.Book)
	}
	return books, nil
}
