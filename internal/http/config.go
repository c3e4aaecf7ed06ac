package http

import (
	"github.com/myapp/bookstore/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Catalog and stores
	Catalog      BookQuerier
	Books        BookStore
	Faqs         FaqStore
	Translations TranslationStore

	// Domain services
	Favourites FavouriteManager
	Downloads  DownloadManager
	Reviews    ReviewManager
	Accounts   AccountService

	// LoginThrottle locks out repeated wrong passwords. Optional.
	LoginThrottle LoginThrottle

	// Health checks
	Database *database.Database
	Version  string

	// Cross-origin access
	AllowedOrigins []string

	// Send HSTS on HTTPS requests
	EnableHSTS bool
}
