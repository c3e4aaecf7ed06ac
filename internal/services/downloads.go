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

// DownloadService records book downloads, at most one per (book, user) pair.
type DownloadService struct {
	store DownloadStore
	books BookLookup
	now   func() time.Time
}

func NewDownloadService(store DownloadStore, books BookLookup) *DownloadService {
	return &DownloadService{store: store, books: books, now: time.Now}
}

func (s *DownloadService) AddDownload(ctx context.Context, bookID, userID uint) (*entities.Download, error) {
	if err := requireBook(ctx, s.books, bookID); err != nil {
		return nil, err
	}

	exists, err := s.store.DownloadExists(ctx, bookID, userID)
	if err != nil {
		return nil, fmt.Errorf("check download: %w", err)
	}
	if exists {
		return nil, apperror.ErrAlreadyDownloaded
	}

	download := &entities.Download{BookID: bookID, UserID: userID, DownloadDate: s.now()}
	if err := s.store.CreateDownload(ctx, download); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrAlreadyDownloaded
		}
		return nil, err
	}
	return download, nil
}

func (s *DownloadService) ListDownloads(ctx context.Context, userID uint) ([]entities.Download, error) {
	return s.store.GetDownloadsByUserID(ctx, userID)
}

func (s *DownloadService) DeleteDownload(ctx context.Context, id uint) error {
	deleted, err := s.store.DeleteDownload(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrDownloadNotFound
	}
	return nil
}
