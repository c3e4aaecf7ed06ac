// Package catalog runs book queries: search, multi-value filters, live rating
// aggregation and sorting composed into one ordered result.
package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/myapp/bookstore/internal/entities"
)

// FilterMode controls how search and filters combine.
type FilterMode string

const (
	// FilterOverride lets each later non-empty step replace the working set.
	FilterOverride FilterMode = "override"
	// FilterIntersect narrows the working set with each non-empty step.
	FilterIntersect FilterMode = "intersect"
)

const (
	FieldTitle  = "title"
	FieldAuthor = "author"

	SortTitle    = "title"
	SortYear     = "year"
	SortYearDesc = "-year"
)

// ParseFilterMode falls back to FilterOverride for anything unrecognised.
func ParseFilterMode(s string) FilterMode {
	if FilterMode(strings.ToLower(strings.TrimSpace(s))) == FilterIntersect {
		return FilterIntersect
	}
	return FilterOverride
}

// BookFinder is the read side of the book store the engine needs.
type BookFinder interface {
	GetAllBooks(ctx context.Context) ([]entities.Book, error)
	SearchByTitle(ctx context.Context, term string) ([]entities.Book, error)
	SearchByAuthor(ctx context.Context, term string) ([]entities.Book, error)
	FindByGenres(ctx context.Context, genres []string) ([]entities.Book, error)
	FindByLanguages(ctx context.Context, languages []string) ([]entities.Book, error)
	FindByAges(ctx context.Context, ages []string) ([]entities.Book, error)
}

// RatingSource returns mean review ratings keyed by book id. Books without
// reviews may be absent.
type RatingSource interface {
	AverageRatings(ctx context.Context, bookIDs []uint) (map[uint]float64, error)
}

// Query describes one catalog request. Zero values mean "not given".
type Query struct {
	Search    string
	Field     string
	Genres    []string
	Languages []string
	Ages      []string
	Rating    *int
	Sort      string
}

type Engine struct {
	books   BookFinder
	ratings RatingSource
	mode    FilterMode
}

func NewEngine(books BookFinder, ratings RatingSource, mode FilterMode) *Engine {
	if mode != FilterIntersect {
		mode = FilterOverride
	}
	return &Engine{books: books, ratings: ratings, mode: mode}
}

func (e *Engine) Mode() FilterMode {
	return e.mode
}

// Query returns the books matching q with Ratings populated.
func (e *Engine) Query(ctx context.Context, q Query) ([]entities.Book, error) {
	working, err := e.books.GetAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}

	steps := []struct {
		active bool
		load   func() ([]entities.Book, error)
	}{
		{strings.TrimSpace(q.Search) != "", func() ([]entities.Book, error) {
			if q.Field == FieldAuthor {
				return e.books.SearchByAuthor(ctx, q.Search)
			}
			return e.books.SearchByTitle(ctx, q.Search)
		}},
		{len(q.Genres) > 0, func() ([]entities.Book, error) { return e.books.FindByGenres(ctx, q.Genres) }},
		{len(q.Languages) > 0, func() ([]entities.Book, error) { return e.books.FindByLanguages(ctx, q.Languages) }},
		{len(q.Ages) > 0, func() ([]entities.Book, error) { return e.books.FindByAges(ctx, q.Ages) }},
	}

	for _, step := range steps {
		if !step.active {
			continue
		}
		matched, err := step.load()
		if err != nil {
			return nil, fmt.Errorf("filter books: %w", err)
		}
		if e.mode == FilterIntersect {
			working = intersect(working, matched)
		} else {
			working = matched
		}
	}

	if err := e.attachRatings(ctx, working); err != nil {
		return nil, err
	}

	if q.Rating != nil {
		working = filterByRating(working, *q.Rating)
	}

	sortBooks(working, q.Sort)
	return working, nil
}

func (e *Engine) attachRatings(ctx context.Context, books []entities.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]uint, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}

	averages, err := e.ratings.AverageRatings(ctx, ids)
	if err != nil {
		return fmt.Errorf("load ratings: %w", err)
	}
	for i := range books {
		books[i].Ratings = averages[books[i].ID]
	}
	return nil
}

// intersect keeps the books of current that also appear in matched, preserving
// the order of current.
func intersect(current, matched []entities.Book) []entities.Book {
	keep := make(map[uint]struct{}, len(matched))
	for _, b := range matched {
		keep[b.ID] = struct{}{}
	}
	result := make([]entities.Book, 0, len(current))
	for _, b := range current {
		if _, ok := keep[b.ID]; ok {
			result = append(result, b)
		}
	}
	return result
}

func filterByRating(books []entities.Book, rating int) []entities.Book {
	result := make([]entities.Book, 0, len(books))
	for _, b := range books {
		if RoundRating(b.Ratings) == rating {
			result = append(result, b)
		}
	}
	return result
}

// RoundRating rounds half up: 3.5 becomes 4.
func RoundRating(avg float64) int {
	return int(math.Floor(avg + 0.5))
}

// sortBooks leaves the order untouched for an empty or unknown key.
func sortBooks(books []entities.Book, key string) {
	switch key {
	case SortTitle:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	case SortYear:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Year < books[j].Year })
	case SortYearDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Year > books[j].Year })
	}
}

// SplitValues turns "novel, epic,,poetry" into [novel epic poetry].
func SplitValues(raw []string) []string {
	var values []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
