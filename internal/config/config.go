package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		CORS
		Auth
		Mail
		Tasks
		Cleanup
		Catalog
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
		Environment              string
	}
	Database struct {
		Driver string // "sqlite" or "postgres"
		Path   string // SQLite file path
		DSN    string // Postgres connection string
	}
	CORS struct {
		AllowedOrigins []string
	}
	Auth struct {
		BcryptCost         int
		PlaintextPasswords bool // Store and compare passwords as given
		RequireVerified    bool // Reject login until the e-mail is confirmed

		// Rate limiting configuration
		MaxLoginAttempts int           // Max failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}
	Mail struct {
		Host      string // Empty host logs messages instead of sending them
		Port      int
		Username  string
		Password  string
		From      string
		VerifyURL string
	}
	Tasks struct {
		Enabled           bool
		DatabasePath      string // Backlite keeps its queue in a separate SQLite file
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Cleanup struct {
		Enabled  bool
		Schedule string        // Cron format: "0 3 * * *" = daily at 03:00
		MaxAge   time.Duration // Unverified accounts older than this are purged
	}
	Catalog struct {
		FilterMode string // "override" or "intersect"
	}
	Log struct {
		Level   string
		Console bool
	}
)

// DatabaseDSN returns the connection string for the configured driver.
func (c *Config) DatabaseDSN() string {
	if c.Database.Driver == DriverPostgres {
		return c.Database.DSN
	}
	return c.Database.Path
}

// splitList parses "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewConfig reads configuration from the environment, loading .env first when present.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("app_env", "development")

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")

	v.SetDefault("cors_allowed_origins", DefaultCORSOrigin)

	// Auth defaults
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_plaintext_passwords", false)
	v.SetDefault("auth_require_verified", false)
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")

	// Mail defaults
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("mail_from", "no-reply@bookstore.local")
	v.SetDefault("mail_verify_url", DefaultVerifyURL)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_database_path", DefaultTasksDatabasePath)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "30s")
	v.SetDefault("task_timeout", "1m")
	v.SetDefault("task_release_after", "5m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	v.SetDefault("unverified_cleanup_enabled", false)
	v.SetDefault("unverified_cleanup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("unverified_cleanup_max_age", "168h")       // 7 days

	v.SetDefault("catalog_filter_mode", "override")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Environment:              v.GetString("APP_ENV"),
		},
		Database: Database{
			Driver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Auth: Auth{
			BcryptCost:         v.GetInt("AUTH_BCRYPT_COST"),
			PlaintextPasswords: v.GetBool("AUTH_PLAINTEXT_PASSWORDS"),
			RequireVerified:    v.GetBool("AUTH_REQUIRE_VERIFIED"),
			MaxLoginAttempts:   v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:    v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:    v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
		Mail: Mail{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			From:      v.GetString("MAIL_FROM"),
			VerifyURL: v.GetString("MAIL_VERIFY_URL"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			DatabasePath:      v.GetString("TASKS_DATABASE_PATH"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Cleanup: Cleanup{
			Enabled:  v.GetBool("UNVERIFIED_CLEANUP_ENABLED"),
			Schedule: v.GetString("UNVERIFIED_CLEANUP_SCHEDULE"),
			MaxAge:   v.GetDuration("UNVERIFIED_CLEANUP_MAX_AGE"),
		},
		Catalog: Catalog{
			FilterMode: v.GetString("CATALOG_FILTER_MODE"),
		},
		Log: Log{
			Level:   v.GetString("LOG_LEVEL"),
			Console: v.GetBool("LOG_CONSOLE"),
		},
	}
}
