// Package database owns the SQLite file that backs identities and snapshots.
//
// A DB holds two handle sets against the same file: a single-connection
// writer guarded by a process-wide mutex, and a query_only reader pool.
// The file runs in WAL mode, so readers see only committed transactions
// and never block behind a write.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/InventoryManager_Go/internal/database/migrations"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
)

// Options configures Open.
type Options struct {
	Path           string
	ReaderPoolSize int
	BusyTimeout    time.Duration
}

// DB is the storage engine: one writer, many readers, one write lock.
type DB struct {
	path   string
	writer *sql.DB
	reader *sql.DB

	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

// Open creates the file (and its directory) if needed, enables WAL, applies
// pending migrations and opens the reader pool.
func Open(ctx context.Context, opts Options) (*DB, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, &Error{Op: OpOpen, Kind: KindUnavailable, Err: errors.New(ErrMsgPathRequired)}
	}
	if opts.ReaderPoolSize <= 0 {
		opts.ReaderPoolSize = DefaultReaderPoolSize
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = DefaultBusyTimeout
	}

	if err := registerFunctions(); err != nil {
		return nil, newError(OpOpen, err)
	}

	cleanPath := filepath.Clean(opts.Path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newError(OpOpen, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err))
		}
	}

	writer, err := openHandle(ctx, cleanPath, opts, false)
	if err != nil {
		return nil, err
	}

	var mode string
	if err := writer.QueryRowContext(ctx, "PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		_ = writer.Close()
		return nil, newError(OpOpen, fmt.Errorf("%s: %w", ErrMsgFailedToEnableWAL, err))
	}

	if err := migrate(ctx, writer); err != nil {
		_ = writer.Close()
		return nil, err
	}
	writer.SetMaxOpenConns(1)

	reader, err := openHandle(ctx, cleanPath, opts, true)
	if err != nil {
		_ = writer.Close()
		return nil, err
	}
	reader.SetMaxOpenConns(opts.ReaderPoolSize)
	reader.SetMaxIdleConns(opts.ReaderPoolSize)

	slog.Default().Info(LogMsgStoreOpened, "path", cleanPath, "journal_mode", mode, "readers", opts.ReaderPoolSize)

	return &DB{path: cleanPath, writer: writer, reader: reader}, nil
}

func openHandle(ctx context.Context, path string, opts Options, readOnly bool) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn(path, opts, readOnly))
	if err != nil {
		return nil, newError(OpOpen, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, newError(OpOpen, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err))
	}
	return db, nil
}

// dsn builds a modernc.org/sqlite connection string; each _pragma is applied
// to every new connection in the pool.
func dsn(path string, opts Options, readOnly bool) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "synchronous(NORMAL)")
	if readOnly {
		q.Add("_pragma", "query_only(1)")
	} else {
		q.Add("_txlock", "immediate")
	}
	return path + "?" + q.Encode()
}

func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return newError(OpMigrate, fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err))
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return newError(OpMigrate, fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err))
	}
	if len(results) > 0 {
		slog.Default().Info(LogMsgMigrationsApplied, "count", len(results))
	}
	return nil
}

// Path returns the cleaned file path.
func (db *DB) Path() string {
	return db.path
}

// lockWrite takes the write mutex and records how long it waited.
func (db *DB) lockWrite() func() {
	start := time.Now()
	db.writeMu.Lock()
	metrics.StoreWriteLockWait.Observe(time.Since(start).Seconds())
	return db.writeMu.Unlock
}

// ExecWrite runs one auto-committed statement under the write lock.
func (db *DB) ExecWrite(ctx context.Context, query string, args ...any) (sql.Result, error) {
	unlock := db.lockWrite()
	defer unlock()

	res, err := db.writer.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, db.fail(ctx, OpExec, err)
	}
	return res, nil
}

// WriteTx runs fn inside one transaction under the write lock. The
// transaction commits when fn returns nil and rolls back otherwise.
func (db *DB) WriteTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	unlock := db.lockWrite()
	defer unlock()

	tx, err := db.writer.BeginTx(ctx, nil)
	if err != nil {
		return db.fail(ctx, OpTx, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err))
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Default().Error(ErrMsgFailedToRollbackTransaction, "error", rbErr)
		}
		return db.fail(ctx, OpTx, err)
	}

	if err := tx.Commit(); err != nil {
		return db.fail(ctx, OpTx, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err))
	}
	return nil
}

// QueryRead runs a query on the reader pool without taking the write lock.
func (db *DB) QueryRead(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.fail(ctx, OpQuery, err)
	}
	return rows, nil
}

// QueryRowRead runs a single-row query on the reader pool. Scan errors
// other than sql.ErrNoRows should go through WrapReadError.
func (db *DB) QueryRowRead(ctx context.Context, query string, args ...any) *sql.Row {
	return db.reader.QueryRowContext(ctx, query, args...)
}

// WrapReadError classifies an error surfaced by rows.Scan, rows.Err or
// Row.Scan. sql.ErrNoRows passes through untouched.
func (db *DB) WrapReadError(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return db.fail(ctx, OpQuery, err)
}

// Ping checks that both handles can reach the file.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.writer.PingContext(ctx); err != nil {
		return db.fail(ctx, OpPing, err)
	}
	if err := db.reader.PingContext(ctx); err != nil {
		return db.fail(ctx, OpPing, err)
	}
	return nil
}

// JournalMode reports the journal mode as seen by a reader connection.
func (db *DB) JournalMode(ctx context.Context) (string, error) {
	var mode string
	if err := db.reader.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		return "", db.fail(ctx, OpPragma, err)
	}
	return strings.ToLower(mode), nil
}

// Close closes the reader pool and then the writer. Safe to call twice.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		rErr := db.reader.Close()
		unlock := db.lockWrite()
		wErr := db.writer.Close()
		unlock()
		if err := errors.Join(rErr, wErr); err != nil {
			db.closeErr = newError(OpClose, err)
		}
	})
	return db.closeErr
}

func (db *DB) fail(ctx context.Context, op string, err error) error {
	e := newError(op, err)
	slog.Default().DebugContext(ctx, LogMsgStatementFailed, "op", op, "kind", e.Kind, "error", err)
	return e
}
