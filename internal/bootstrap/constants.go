package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting trading post cache"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Store and Market Wiring
// =============================================================================

const (
	LogMsgStoreOpened        = "Local store opened"
	LogMsgStaticListings     = "Static listings seeded"
	ErrMsgFailedOpenStore    = "failed to open store"
	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgFailedCalculator   = "failed to create profit calculator"
	ErrMsgFailedSeedListings = "failed to seed static listings"
)

// =============================================================================
// Background Reconciliation
// =============================================================================

const (
	// ReconcileWorkers is the number of goroutines draining the job queue
	ReconcileWorkers = 1

	// ReconcileQueueSize bounds queued reconciliation runs; extra ticks are dropped
	ReconcileQueueSize = 1

	LogMsgReconcileScheduled = "Placeholder reconciliation scheduled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds graceful shutdown of the HTTP server
	ShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Store close failed"
)
