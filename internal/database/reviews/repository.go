// Package reviews provides database operations for book reviews and the rating
// aggregate derived from them.
package reviews

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateReview(ctx context.Context, review *entities.Review) error {
	if err := r.db.WithContext(ctx).Omit("Book", "User").Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *Repository) SaveReview(ctx context.Context, review *entities.Review) error {
	if err := r.db.WithContext(ctx).Omit("Book", "User").Save(review).Error; err != nil {
		return fmt.Errorf("save review %d: %w", review.ID, err)
	}
	return nil
}

// GetReviewByID returns gorm.ErrRecordNotFound when the review does not exist.
func (r *Repository) GetReviewByID(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *Repository) GetAllReviews(ctx context.Context) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.WithContext(ctx).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *Repository) GetReviewsByBookID(ctx context.Context, bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// DeleteReview removes a review. It reports false when there was nothing to delete.
func (r *Repository) DeleteReview(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Review{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete review %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

type bookAverage struct {
	BookID  uint
	Average float64
}

// AverageRatings returns the mean rating per book for the given ids. Books without
// reviews are absent from the map.
func (r *Repository) AverageRatings(ctx context.Context, bookIDs []uint) (map[uint]float64, error) {
	averages := make(map[uint]float64, len(bookIDs))
	if len(bookIDs) == 0 {
		return averages, nil
	}

	var rows []bookAverage
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("book_id, AVG(rating) AS average").
		Where("book_id IN ?", bookIDs).
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("average ratings: %w", err)
	}

	for _, row := range rows {
		averages[row.BookID] = row.Average
	}
	return averages, nil
}
