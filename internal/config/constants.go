package config

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./bookstore.db"

	// DefaultTasksDatabasePath is the default path for the task queue database
	DefaultTasksDatabasePath = "./bookstore-tasks.db"

	// DefaultCORSOrigin is the front-end dev server
	DefaultCORSOrigin = "http://localhost:5173"

	// DefaultVerifyURL is where the confirmation link in verification mail points
	DefaultVerifyURL = "http://localhost:8080/api/confirm"
)
