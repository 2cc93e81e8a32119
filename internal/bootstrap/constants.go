package bootstrap

// DirPermission is the standard permission for creating directories
const DirPermission = 0755

// LogFileName is the active log file inside the log directory; rotated copies sit beside it.
const LogFileName = "inventory-manager.log"

// LogMaxAgeDays bounds how long rotated log files are kept.
const LogMaxAgeDays = 28

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting inventory manager"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
)

// Shutdown log messages
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgClosingStore          = "Closing store"
	LogMsgStoreCloseFailed      = "Store close failed"
	LogMsgServerStopped         = "Server stopped"
	LogMsgServiceShutdownFailed = " shutdown failed"
)
