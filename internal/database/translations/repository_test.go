package translations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myapp/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "translations.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Translation{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func TestRepository_GetTranslations(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertTranslations(ctx, "ru", map[string]string{"greeting": "Привет", "bye": "Пока"}))
	require.NoError(t, repo.UpsertTranslations(ctx, "en", map[string]string{"greeting": "Hello"}))

	ru, err := repo.GetTranslations(ctx, "ru")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "Привет", "bye": "Пока"}, ru)

	en, err := repo.GetTranslations(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "Hello"}, en)
}

func TestRepository_GetTranslations_UnknownLanguage(t *testing.T) {
	repo := setupTestDB(t)

	got, err := repo.GetTranslations(context.Background(), "de")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_UpsertTranslations_ReplacesValue(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertTranslations(ctx, "kk", map[string]string{"greeting": "Salem"}))
	require.NoError(t, repo.UpsertTranslations(ctx, "kk", map[string]string{"greeting": "Сәлем"}))

	got, err := repo.GetTranslations(ctx, "kk")
	require.NoError(t, err)
	assert.Equal(t, "Сәлем", got["greeting"])
}
