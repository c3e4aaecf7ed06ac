// Package books provides database operations for the book catalog.
//
// Every finder returns books in store iteration order (ascending id); ordering for
// presentation is the catalog engine's job.
package books

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a new book and fills in its id.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// GetBookByID returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// BookExists reports whether a book with the given id is stored.
func (r *Repository) BookExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteBook removes a book. It reports false when there was nothing to delete.
func (r *Repository) DeleteBook(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete book %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// SearchByTitle matches a case-insensitive substring of the title.
func (r *Repository) SearchByTitle(ctx context.Context, term string) ([]entities.Book, error) {
	return r.searchField(ctx, term, func(b entities.Book) string { return b.Title })
}

// SearchByAuthor matches a case-insensitive substring of the author.
func (r *Repository) SearchByAuthor(ctx context.Context, term string) ([]entities.Book, error) {
	return r.searchField(ctx, term, func(b entities.Book) string { return b.Author })
}

// searchField folds case in Go: SQLite's LOWER and LIKE only fold ASCII, and
// titles are mostly Cyrillic. The term is a literal substring, not a pattern.
func (r *Repository) searchField(ctx context.Context, term string, field func(entities.Book) string) ([]entities.Book, error) {
	all, err := r.GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	books := make([]entities.Book, 0, len(all))
	for _, b := range all {
		if strings.Contains(strings.ToLower(field(b)), needle) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *Repository) FindByGenres(ctx context.Context, genres []string) ([]entities.Book, error) {
	return r.findIn(ctx, "genre", genres)
}

func (r *Repository) FindByLanguages(ctx context.Context, languages []string) ([]entities.Book, error) {
	return r.findIn(ctx, "language", languages)
}

func (r *Repository) FindByAges(ctx context.Context, ages []string) ([]entities.Book, error) {
	return r.findIn(ctx, "age", ages)
}

func (r *Repository) findIn(ctx context.Context, column string, values []string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Where(column+" IN ?", values).
		Order("id ASC").
		Find(&books).Error
	return books, err
}
