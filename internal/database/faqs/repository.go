// Package faqs provides database operations for frequently asked questions.
package faqs

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all FAQ database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new FAQ repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFaq(ctx context.Context, faq *entities.Faq) error {
	if err := r.db.WithContext(ctx).Create(faq).Error; err != nil {
		return fmt.Errorf("create faq: %w", err)
	}
	return nil
}

func (r *Repository) GetAllFaqs(ctx context.Context) ([]entities.Faq, error) {
	var faqs []entities.Faq
	err := r.db.WithContext(ctx).Order("id ASC").Find(&faqs).Error
	return faqs, err
}

// SearchByQuestion matches FAQs whose question contains keyword, ignoring case.
// Folding happens in Go so non-ASCII letters compare the same on every driver.
func (r *Repository) SearchByQuestion(ctx context.Context, keyword string) ([]entities.Faq, error) {
	all, err := r.GetAllFaqs(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	faqs := make([]entities.Faq, 0, len(all))
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Question), needle) {
			faqs = append(faqs, f)
		}
	}
	return faqs, nil
}

// DeleteFaq removes a FAQ. It reports false when there was nothing to delete.
func (r *Repository) DeleteFaq(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Faq{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete faq %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
