package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
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

	// LogFileRetentionCount is the number of older log files kept next to the new session file
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Gilded Rose inventory service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Store and Seed
// =============================================================================

const (
	// StoreOpenTimeout bounds connecting to the store and creating its schema
	StoreOpenTimeout = 30 * time.Second
)

const (
	LogMsgStoreOpened  = "Inventory store opened"
	LogMsgSeeding      = "Seeding inventory from JSON config..."
	LogMsgSeedDisabled = "No seed file configured, seed skipped"

	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgFailedOpenStore    = "failed to open inventory store"
	ErrMsgFailedLoadItems    = "failed to load items config"
	ErrMsgFailedSeed         = "failed to seed inventory"
)

// =============================================================================
// Workers
// =============================================================================

const (
	LogMsgNightlyWorkerStarted = "Nightly update worker started"
	LogMsgSimulatedDaysEnabled = "Simulated days enabled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Nightly update worker shutdown failed"
	LogMsgStoreCloseFailed     = "Inventory store close failed"
	LogMsgServiceShutdownFail  = "Inventory service shutdown failed"
)
