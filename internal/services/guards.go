package services

import (
	"context"
	"fmt"

	"github.com/myapp/bookstore/internal/apperror"
)

func requireBook(ctx context.Context, books BookLookup, id uint) error {
	exists, err := books.BookExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check book %d: %w", id, err)
	}
	if !exists {
		return apperror.ErrBookNotFound
	}
	return nil
}

func requireUser(ctx context.Context, users UserLookup, id uint) error {
	exists, err := users.UserExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check user %d: %w", id, err)
	}
	if !exists {
		return apperror.ErrUserNotFound
	}
	return nil
}
