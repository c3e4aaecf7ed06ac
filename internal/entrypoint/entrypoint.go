package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/myapp/bookstore/internal/auth"
	"github.com/myapp/bookstore/internal/catalog"
	"github.com/myapp/bookstore/internal/config"
	"github.com/myapp/bookstore/internal/database"
	"github.com/myapp/bookstore/internal/database/books"
	"github.com/myapp/bookstore/internal/database/downloads"
	"github.com/myapp/bookstore/internal/database/faqs"
	"github.com/myapp/bookstore/internal/database/favourites"
	"github.com/myapp/bookstore/internal/database/reviews"
	"github.com/myapp/bookstore/internal/database/translations"
	"github.com/myapp/bookstore/internal/database/users"
	http_controllers "github.com/myapp/bookstore/internal/http"
	"github.com/myapp/bookstore/internal/logging"
	"github.com/myapp/bookstore/internal/mail"
	"github.com/myapp/bookstore/internal/scheduler"
	"github.com/myapp/bookstore/internal/services"
	"github.com/myapp/bookstore/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("Shutdown server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	log.Info().Msg("Server exiting")
}

// Migrate creates or updates the schema and exits.
func Migrate(cfg *config.Config) error {
	logging.Init(cfg.Log.Level, cfg.Log.Console)

	db, err := database.NewDatabase(cfg.Database.Driver, cfg.DatabaseDSN())
	if err != nil {
		return err
	}
	return db.Close()
}

func Run(cfg *config.Config, version string) {
	logging.Init(cfg.Log.Level, cfg.Log.Console)
	if cfg.Global.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info().Str("version", version).Str("env", cfg.Global.Environment).Msg("Starting bookstore")

	db, err := database.NewDatabase(cfg.Database.Driver, cfg.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	reviewRepo := reviews.NewRepository(db.DB)

	directMailer := newMailSender(cfg.Mail)
	var mailer auth.Mailer = directMailer

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskQueue tasks.Enqueuer
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Tasks.DatabasePath, tasks.ConfigFrom(cfg.Tasks))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize task queue")
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing task client")
			}
		}()

		taskClient.Register(
			tasks.NewSendVerificationEmailQueue(directMailer),
			tasks.NewPurgeUnverifiedUsersQueue(userRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		taskQueue = taskClient
		mailer = tasks.NewQueuedMailer(taskClient)
	}

	cleanup := scheduler.NewUnverifiedCleanupScheduler(taskQueue, userRepo, cfg.Cleanup)
	if err := cleanup.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start unverified cleanup scheduler")
	}

	throttle := auth.NewLoginThrottle(auth.ThrottleConfig{
		MaxAttempts:     cfg.Auth.MaxLoginAttempts,
		WindowDuration:  cfg.Auth.RateLimitWindow,
		LockoutDuration: cfg.Auth.LockoutDuration,
	})

	filterMode := catalog.ParseFilterMode(cfg.Catalog.FilterMode)
	log.Info().Str("filter_mode", string(filterMode)).Msg("Catalog configured")

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:        catalog.NewEngine(bookRepo, reviewRepo, filterMode),
		Books:          bookRepo,
		Faqs:           faqs.NewRepository(db.DB),
		Translations:   translations.NewRepository(db.DB),
		Favourites:     services.NewFavouriteService(favourites.NewRepository(db.DB), bookRepo, userRepo),
		Downloads:      services.NewDownloadService(downloads.NewRepository(db.DB), bookRepo),
		Reviews:        services.NewReviewService(reviewRepo, bookRepo, userRepo),
		Accounts:       auth.NewService(userRepo, mailer, cfg.Auth),
		LoginThrottle:  throttle,
		Database:       db,
		Version:        version,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableHSTS:     cfg.Global.Environment == "production",
	})

	onShutdown := func(ctx context.Context) {
		cleanup.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

// newMailSender sends over SMTP when a host is configured and logs the link otherwise.
func newMailSender(cfg config.Mail) mail.Sender {
	if cfg.Host == "" {
		log.Warn().Msg("SMTP_HOST is not set, verification links will only be logged")
		return mail.LogSender{VerifyURL: cfg.VerifyURL}
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		Password:  cfg.Password,
		From:      cfg.From,
		VerifyURL: cfg.VerifyURL,
	})
}
