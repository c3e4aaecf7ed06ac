// Package database provides the data access layer for the bookstore.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres) and migrations
//	├── books/           # Book CRUD, substring search, multi-value filters
//	├── users/           # User lookups by id, username, email, verification token
//	├── reviews/         # Reviews and the per-book average rating
//	├── favourites/      # (user, book) bookmarks
//	├── downloads/       # (book, user) download records
//	├── faqs/            # Static question/answer content
//	└── translations/    # Key/value UI strings per language
//
// Each sub-package provides a Repository type built from a *gorm.DB:
//
//	db, err := database.NewDatabase(database.DriverSQLite, "./bookstore.db")
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetBookByID(ctx, 42)
//
// # Errors
//
// Repositories return gorm errors wrapped with context. Lookups of a single row
// return gorm.ErrRecordNotFound when the row is absent; callers translate that into
// the domain's not-found error. The connection is opened with TranslateError, so a
// unique-index violation surfaces as gorm.ErrDuplicatedKey.
//
// # Uniqueness
//
// Case-insensitive usernames, e-mails, favourites per (user, book) and downloads per
// (book, user) are all backed by unique indexes. Services still check before
// inserting to produce precise messages, and treat ErrDuplicatedKey as the same
// conflict when two requests race past the check.
package database
