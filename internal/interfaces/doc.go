// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookFinder, RatingSource: catalog reads (internal/catalog/engine.go)
//   - BookLookup, UserLookup: existence guards (internal/services/interfaces.go)
//   - FavouriteStore, DownloadStore, ReviewStore: relation stores (internal/services/interfaces.go)
//   - UserStore: accounts (internal/auth/service.go)
//   - BookStore, FaqStore, TranslationStore: handler-level stores (internal/http/stores.go)
//
// ## Service Interfaces
//
//   - BookQuerier, FavouriteManager, DownloadManager, ReviewManager, AccountService,
//     LoginThrottle: what the HTTP controllers call (internal/http/stores.go)
//
// ## Delivery Interfaces
//
//   - mail.Sender: synchronous SMTP or log delivery (internal/mail/mail.go)
//   - auth.Mailer: what registration calls; either a mail.Sender or the queued mailer
//   - tasks.Enqueuer: adds background tasks (internal/tasks/send_verification.go)
//   - tasks.UnverifiedUserPurger: stale account removal (internal/tasks/purge_unverified.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., orders):
//
//  1. Add the entity to internal/entities/ and to database.Models()
//
//  2. Create sub-package: internal/database/orders/
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods, each taking a context.Context first
//
//  4. Add compile-time check to checks.go:
//
//     var _ http.OrderStore = (*orders.Repository)(nil)
//
// # Adding a New Background Task
//
//  1. Define the task type in internal/tasks/ with a Config() returning its
//     backlite.QueueConfig (name, attempts, backoff, timeout)
//
//  2. Write a backlite.QueueProcessor and a NewXQueue constructor
//
//  3. Register the queue in entrypoint.go next to the existing ones
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
