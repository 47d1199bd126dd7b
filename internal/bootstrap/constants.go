package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
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

	// LogFileRetentionLimit is the number of session logs kept, counting the new one
	LogFileRetentionLimit = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSwapMeet    = "Starting SwapMeet"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage and Seeding
// =============================================================================

const (
	LogMsgStorageSelected    = "Vendor storage ready"
	LogMsgSeeding            = "Seeding vendors..."
	ErrMsgFailedOpenDatabase = "failed to open database"
	ErrMsgFailedMigrate      = "failed to migrate database"
	ErrMsgFailedLoadSeed     = "failed to load seed file"
	ErrMsgFailedApplySeed    = "failed to apply seed file"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingTraces       = "Flushing traces..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgTracerShutdownFailed = "Tracer shutdown failed"
)
