package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/entities"
)

// FavouriteService manages the favourite books of users. A (user, book) pair
// can be favourited at most once.
type FavouriteService struct {
	store FavouriteStore
	books BookLookup
	users UserLookup
}

func NewFavouriteService(store FavouriteStore, books BookLookup, users UserLookup) *FavouriteService {
	return &FavouriteService{store: store, books: books, users: users}
}

// AddFavorite requires both the user and the book to exist.
func (s *FavouriteService) AddFavorite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	if err := requireBook(ctx, s.books, bookID); err != nil {
		return nil, err
	}

	if _, err := s.store.GetFavourite(ctx, userID, bookID); err == nil {
		return nil, apperror.ErrAlreadyFavorited
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check favourite: %w", err)
	}

	favourite := &entities.Favorite{UserID: userID, BookID: bookID}
	if err := s.store.CreateFavourite(ctx, favourite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrAlreadyFavorited
		}
		return nil, err
	}
	return favourite, nil
}

func (s *FavouriteService) RemoveFavorite(ctx context.Context, userID, bookID uint) error {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return err
	}
	if err := requireBook(ctx, s.books, bookID); err != nil {
		return err
	}

	deleted, err := s.store.DeleteFavourite(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrFavoriteNotFound
	}
	return nil
}

// ListFavoriteBooks returns the books, not the join rows.
func (s *FavouriteService) ListFavoriteBooks(ctx context.Context, userID uint) ([]entities.Book, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.store.GetFavouriteBooks(ctx, userID)
}
