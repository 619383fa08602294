package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DriverSQLite is the database/sql driver name registered by modernc.org/sqlite
	DriverSQLite = "sqlite"

	// SQLiteBusyTimeoutMillis bounds how long a writer waits on a locked database
	SQLiteBusyTimeoutMillis = 5000
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToOpenDatabase        = "failed to open database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgEmptySQLitePath             = "sqlite path is required"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgOpenedSQLiteDatabase            = "Opened sqlite database"
)
