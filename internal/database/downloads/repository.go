// Package downloads provides database operations for download records.
package downloads

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all download database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new downloads repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateDownload(ctx context.Context, download *entities.Download) error {
	if err := r.db.WithContext(ctx).Create(download).Error; err != nil {
		return fmt.Errorf("create download (book %d, user %d): %w", download.BookID, download.UserID, err)
	}
	return nil
}

// DownloadExists reports whether the user already has a record for the book.
func (r *Repository) DownloadExists(ctx context.Context, bookID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Download{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetDownloadByID returns gorm.ErrRecordNotFound when the record does not exist.
func (r *Repository) GetDownloadByID(ctx context.Context, id uint) (*entities.Download, error) {
	var download entities.Download
	if err := r.db.WithContext(ctx).First(&download, id).Error; err != nil {
		return nil, err
	}
	return &download, nil
}

func (r *Repository) GetDownloadsByUserID(ctx context.Context, userID uint) ([]entities.Download, error) {
	var downloads []entities.Download
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("download_date ASC, id ASC").
		Find(&downloads).Error
	return downloads, err
}

// DeleteDownload removes a record. It reports false when there was nothing to delete.
func (r *Repository) DeleteDownload(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Download{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete download %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
