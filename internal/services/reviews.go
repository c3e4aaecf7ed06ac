package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/entities"
)

// ReviewService stores reviews. Average ratings are never kept here; the
// catalog computes them on every read.
type ReviewService struct {
	store ReviewStore
	books BookLookup
	users UserLookup
	now   func() time.Time
}

func NewReviewService(store ReviewStore, books BookLookup, users UserLookup) *ReviewService {
	return &ReviewService{store: store, books: books, users: users, now: time.Now}
}

// CreateReview requires both the book and the user to exist. The creation time
// is assigned here, never taken from the caller.
func (s *ReviewService) CreateReview(ctx context.Context, bookID, userID uint, rating int, comment string) (*entities.Review, error) {
	if err := requireBook(ctx, s.books, bookID); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	review := &entities.Review{
		BookID:    bookID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview replaces rating and comment of an existing review.
func (s *ReviewService) UpdateReview(ctx context.Context, id uint, rating int, comment string) (*entities.Review, error) {
	review, err := s.store.GetReviewByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.store.SaveReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, bookID uint) ([]entities.Review, error) {
	return s.store.GetReviewsByBookID(ctx, bookID)
}

func (s *ReviewService) ListAllReviews(ctx context.Context) ([]entities.Review, error) {
	return s.store.GetAllReviews(ctx)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	deleted, err := s.store.DeleteReview(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrReviewNotFound
	}
	return nil
}
