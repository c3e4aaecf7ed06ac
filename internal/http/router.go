package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myapp/bookstore/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware())
	router.Use(RecoveryMiddleware())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.EnableHSTS {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	// CORS runs before routing so preflight requests never reach a handler
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Catalog, cfg.Books)
	downloadsController := NewDownloadsController(cfg.Downloads)
	faqsController := NewFaqsController(cfg.Faqs)
	favouritesController := NewFavouritesController(cfg.Favourites)
	reviewsController := NewReviewsController(cfg.Reviews)
	translationsController := NewTranslationsController(cfg.Translations)
	usersController := NewUsersController(cfg.Accounts, cfg.LoginThrottle)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	api.GET("", health.Home)

	// Books
	api.GET("/books", booksController.ListBooks)
	api.POST("/books", booksController.CreateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	// Downloads
	api.POST("/downloads", downloadsController.AddDownload)
	api.GET("/downloads", downloadsController.ListDownloads)
	api.DELETE("/downloads/:id", downloadsController.DeleteDownload)

	// FAQs
	api.GET("/faqs", faqsController.ListFaqs)
	api.GET("/faqs/search", faqsController.SearchFaqs)
	api.POST("/faqs", faqsController.CreateFaq)
	api.DELETE("/faqs/:id", faqsController.DeleteFaq)

	// Favourites
	api.GET("/favorites/:userId", favouritesController.ListFavourites)
	api.POST("/favorites/:userId", favouritesController.AddFavourite)
	api.DELETE("/favorites/:userId/:bookId", favouritesController.RemoveFavourite)

	// Reviews
	api.POST("/reviews", reviewsController.CreateReview)
	api.GET("/reviews", reviewsController.ListAllReviews)
	api.GET("/reviews/:bookId", reviewsController.ListBookReviews)
	api.PUT("/reviews/:id", reviewsController.UpdateReview)
	api.DELETE("/reviews/:id", reviewsController.DeleteReview)

	// Translations
	api.GET("/translations", translationsController.GetTranslations)

	// Accounts
	api.POST("/register", usersController.Register)
	api.POST("/login", usersController.Login)
	api.GET("/confirm", usersController.Confirm)
	api.GET("/profile/:userId", usersController.GetProfile)
	api.PUT("/profile/:userId", usersController.UpdateProfile)

	return router
}
