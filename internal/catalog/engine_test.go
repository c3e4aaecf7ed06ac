package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myapp/bookstore/internal/database/books"
	"github.com/myapp/bookstore/internal/database/reviews"
	"github.com/myapp/bookstore/internal/entities"
)

type memoryBooks struct {
	books []entities.Book
	err   error
}

func (m *memoryBooks) GetAllBooks(context.Context) ([]entities.Book, error) {
	return m.where(func(entities.Book) bool { return true })
}

func (m *memoryBooks) SearchByTitle(_ context.Context, term string) ([]entities.Book, error) {
	return m.where(func(b entities.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), strings.ToLower(term))
	})
}

func (m *memoryBooks) SearchByAuthor(_ context.Context, term string) ([]entities.Book, error) {
	return m.where(func(b entities.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), strings.ToLower(term))
	})
}

func (m *memoryBooks) FindByGenres(_ context.Context, values []string) ([]entities.Book, error) {
	return m.where(func(b entities.Book) bool { return contains(values, b.Genre) })
}

func (m *memoryBooks) FindByLanguages(_ context.Context, values []string) ([]entities.Book, error) {
	return m.where(func(b entities.Book) bool { return contains(values, b.Language) })
}

func (m *memoryBooks) FindByAges(_ context.Context, values []string) ([]entities.Book, error) {
	return m.where(func(b entities.Book) bool { return contains(values, b.Age) })
}

func (m *memoryBooks) where(keep func(entities.Book) bool) ([]entities.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entities.Book
	for _, b := range m.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

type memoryRatings map[uint][]int

func (m memoryRatings) AverageRatings(_ context.Context, ids []uint) (map[uint]float64, error) {
	out := make(map[uint]float64)
	for _, id := range ids {
		rs := m[id]
		if len(rs) == 0 {
			continue
		}
		sum := 0
		for _, r := range rs {
			sum += r
		}
		out[id] = float64(sum) / float64(len(rs))
	}
	return out, nil
}

func fixtureBooks() []entities.Book {
	return []entities.Book{
		{ID: 1, Title: "War and Peace", Author: "Leo Tolstoy", Genre: "novel", Language: "ru", Age: "16+", Year: 1869},
		{ID: 2, Title: "The Little Prince", Author: "Antoine de Saint-Exupery", Genre: "fairy tale", Language: "fr", Age: "6+", Year: 1943},
		{ID: 3, Title: "Anna Karenina", Author: "Leo Tolstoy", Genre: "novel", Language: "ru", Age: "16+", Year: 1878},
		{ID: 4, Title: "Abai Zholy", Author: "Mukhtar Auezov", Genre: "epic", Language: "kk", Age: "12+", Year: 1942},
		{ID: 5, Title: "Le Petit Nicolas", Author: "Rene Goscinny", Genre: "novel", Language: "fr", Age: "6+", Year: 1959},
	}
}

func newTestEngine(mode FilterMode, ratings memoryRatings) *Engine {
	return NewEngine(&memoryBooks{books: fixtureBooks()}, ratings, mode)
}

func ids(books []entities.Book) []uint {
	out := make([]uint, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestEngine_NoCriteriaReturnsAllInStoreOrder(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{})

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestEngine_SearchField(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)
	ctx := context.Background()

	byTitle, err := engine.Query(ctx, Query{Search: "PRINCE"})
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids(byTitle))

	byAuthor, err := engine.Query(ctx, Query{Search: "tolstoy", Field: FieldAuthor})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids(byAuthor))

	unknownField, err := engine.Query(ctx, Query{Search: "tolstoy", Field: "isbn"})
	require.NoError(t, err)
	assert.Empty(t, unknownField)
}

func TestEngine_BlankSearchIsIgnored(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{Search: "   "})

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestEngine_OverrideLastFilterWins(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{
		Genres:    []string{"novel"},
		Languages: []string{"kk"},
	})

	require.NoError(t, err)
	// language alone decides; the genre filter is discarded
	assert.Equal(t, []uint{4}, ids(got))
}

func TestEngine_OverrideSearchReplacedByFilter(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{
		Search: "war",
		Ages:   []string{"6+"},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 5}, ids(got))
}

func TestEngine_IntersectNarrows(t *testing.T) {
	engine := newTestEngine(FilterIntersect, nil)

	got, err := engine.Query(context.Background(), Query{
		Genres:    []string{"novel"},
		Languages: []string{"fr"},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{5}, ids(got))
}

func TestEngine_MultiValueFilter(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{Languages: []string{"kk", "fr"}})

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 4, 5}, ids(got))
}

func TestEngine_RatingsAreUnroundedMeans(t *testing.T) {
	engine := newTestEngine(FilterOverride, memoryRatings{1: {5, 3, 4}, 2: {4, 5}})

	got, err := engine.Query(context.Background(), Query{})

	require.NoError(t, err)
	byID := map[uint]float64{}
	for _, b := range got {
		byID[b.ID] = b.Ratings
	}
	assert.Equal(t, 4.0, byID[1])
	assert.Equal(t, 4.5, byID[2])
	assert.Equal(t, 0.0, byID[3])
}

func TestEngine_RatingFilterRoundsHalfUp(t *testing.T) {
	engine := newTestEngine(FilterOverride, memoryRatings{1: {5, 3, 4}, 2: {4, 5}, 3: {3, 4, 4, 4}, 4: {1, 2}})
	ctx := context.Background()

	tests := []struct {
		name   string
		rating int
		want   []uint
	}{
		{"exact four", 4, []uint{1, 3}},
		{"half rounds up", 5, []uint{2}},
		{"one and a half", 2, []uint{4}},
		{"unrated books are zero", 0, []uint{5}},
		{"no match", 3, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Query(ctx, Query{Rating: intPtr(tt.rating)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEngine_Sort(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)
	ctx := context.Background()

	byTitle, err := engine.Query(ctx, Query{Sort: SortTitle})
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 3, 5, 2, 1}, ids(byTitle))

	asc, err := engine.Query(ctx, Query{Sort: SortYear})
	require.NoError(t, err)
	desc, err := engine.Query(ctx, Query{Sort: SortYearDesc})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 3, 4, 2, 5}, ids(asc))
	reversed := ids(desc)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, ids(asc), reversed)
}

func TestEngine_UnknownSortKeepsOrder(t *testing.T) {
	engine := newTestEngine(FilterOverride, nil)

	got, err := engine.Query(context.Background(), Query{Sort: "popularity"})

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestEngine_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("disk on fire")
	engine := NewEngine(&memoryBooks{err: boom}, memoryRatings{}, FilterOverride)

	_, err := engine.Query(context.Background(), Query{})

	assert.ErrorIs(t, err, boom)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 0, RoundRating(0))
	assert.Equal(t, 3, RoundRating(3.49))
	assert.Equal(t, 4, RoundRating(3.5))
	assert.Equal(t, 4, RoundRating(4.0))
}

func TestParseFilterMode(t *testing.T) {
	assert.Equal(t, FilterIntersect, ParseFilterMode(" Intersect "))
	assert.Equal(t, FilterOverride, ParseFilterMode("override"))
	assert.Equal(t, FilterOverride, ParseFilterMode(""))
	assert.Equal(t, FilterOverride, ParseFilterMode("union"))
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"novel", "epic", "poetry"}, SplitValues([]string{"novel, epic,,poetry"}))
	assert.Equal(t, []string{"ru", "kk"}, SplitValues([]string{"ru", " kk "}))
	assert.Empty(t, SplitValues([]string{" , "}))
	assert.Empty(t, SplitValues(nil))
}

func TestEngine_WithSQLiteRepositories(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Book{}, &entities.User{}, &entities.Review{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	bookRepo := books.NewRepository(db)
	reviewRepo := reviews.NewRepository(db)
	ctx := context.Background()

	for _, b := range fixtureBooks() {
		book := b
		book.ID = 0
		require.NoError(t, bookRepo.CreateBook(ctx, &book))
	}
	for _, rating := range []int{5, 3, 4} {
		require.NoError(t, reviewRepo.CreateReview(ctx, &entities.Review{BookID: 1, UserID: 1, Rating: rating}))
	}

	engine := NewEngine(bookRepo, reviewRepo, FilterOverride)
	got, err := engine.Query(ctx, Query{Search: "tolstoy", Field: FieldAuthor, Rating: intPtr(4), Sort: SortYearDesc})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "War and Peace", got[0].Title)
	assert.Equal(t, 4.0, got[0].Ratings)
}
