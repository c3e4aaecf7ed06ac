package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/myapp/bookstore/internal/auth"
	"github.com/myapp/bookstore/internal/catalog"
	"github.com/myapp/bookstore/internal/database/books"
	"github.com/myapp/bookstore/internal/database/downloads"
	"github.com/myapp/bookstore/internal/database/faqs"
	"github.com/myapp/bookstore/internal/database/favourites"
	"github.com/myapp/bookstore/internal/database/reviews"
	"github.com/myapp/bookstore/internal/database/translations"
	"github.com/myapp/bookstore/internal/database/users"
	"github.com/myapp/bookstore/internal/http"
	"github.com/myapp/bookstore/internal/mail"
	"github.com/myapp/bookstore/internal/services"
	"github.com/myapp/bookstore/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Book store implementations
var _ catalog.BookFinder = (*books.Repository)(nil)
var _ services.BookLookup = (*books.Repository)(nil)
var _ http.BookStore = (*books.Repository)(nil)

// Rating aggregation
var _ catalog.RatingSource = (*reviews.Repository)(nil)
var _ services.ReviewStore = (*reviews.Repository)(nil)

// User store implementations
var _ auth.UserStore = (*users.Repository)(nil)
var _ services.UserLookup = (*users.Repository)(nil)
var _ tasks.UnverifiedUserPurger = (*users.Repository)(nil)

var _ services.FavouriteStore = (*favourites.Repository)(nil)
var _ services.DownloadStore = (*downloads.Repository)(nil)
var _ http.FaqStore = (*faqs.Repository)(nil)
var _ http.TranslationStore = (*translations.Repository)(nil)

// =============================================================================
// Domain Services
// =============================================================================

var _ http.BookQuerier = (*catalog.Engine)(nil)
var _ http.FavouriteManager = (*services.FavouriteService)(nil)
var _ http.DownloadManager = (*services.DownloadService)(nil)
var _ http.ReviewManager = (*services.ReviewService)(nil)
var _ http.AccountService = (*auth.Service)(nil)
var _ http.LoginThrottle = (*auth.LoginThrottle)(nil)

// =============================================================================
// Mail Delivery
// =============================================================================

var _ mail.Sender = (*mail.SMTPSender)(nil)
var _ mail.Sender = mail.LogSender{}
var _ auth.Mailer = (*tasks.QueuedMailer)(nil)
var _ tasks.Enqueuer = (*tasks.Client)(nil)
