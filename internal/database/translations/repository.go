// Package translations provides read access to UI strings per language.
package translations

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/myapp/bookstore/internal/entities"
)

// Repository handles all translation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new translations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetTranslations returns the key to value map for a language. An unknown
// language yields an empty map.
func (r *Repository) GetTranslations(ctx context.Context, language string) (map[string]string, error) {
	var rows []entities.Translation
	if err := r.db.WithContext(ctx).Where("language = ?", language).Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

// UpsertTranslations stores values for a language, replacing existing keys.
func (r *Repository) UpsertTranslations(ctx context.Context, language string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]entities.Translation, 0, len(values))
	for key, value := range values {
		rows = append(rows, entities.Translation{Key: key, Language: language, Value: value})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
}
