package database

import "time"

// Driver settings
const (
	// DriverName is the database/sql name registered by modernc.org/sqlite.
	DriverName = "sqlite"

	// DefaultReaderPoolSize is the number of read-only connections kept open.
	DefaultReaderPoolSize = 4

	// DefaultBusyTimeout bounds how long a statement waits on a locked file.
	DefaultBusyTimeout = 5 * time.Second

	// FoldLowerFunc is the SQL function used for case-insensitive name matching.
	FoldLowerFunc = "fold_lower"

	// JournalModeWAL is the journal mode reported by PRAGMA journal_mode.
	JournalModeWAL = "wal"
)

// Operation names carried by *Error
const (
	OpOpen    = "open"
	OpMigrate = "migrate"
	OpPing    = "ping"
	OpExec    = "exec"
	OpTx      = "tx"
	OpQuery   = "query"
	OpClose   = "close"
	OpPragma  = "pragma"
)

// Error Messages - Database Operations
const (
	ErrMsgPathRequired                = "storage path is required"
	ErrMsgFailedToCreateDir           = "failed to create storage directory"
	ErrMsgFailedToOpen                = "failed to open sqlite db"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToEnableWAL           = "failed to enable WAL journal mode"
	ErrMsgFailedToRunMigrations       = "failed to run migrations"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
)

// Log Messages
const (
	LogMsgStoreOpened       = "Snapshot store opened"
	LogMsgMigrationsApplied = "Applied store migrations"
	LogMsgStatementFailed   = "Store statement failed"
)
