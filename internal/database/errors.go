package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
)

// Kind classifies a store failure.
type Kind string

const (
	KindUnavailable Kind = "unavailable"
	KindIO          Kind = "io"
	KindConstraint  Kind = "constraint"
	KindCorrupt     Kind = "corrupt"
	KindBusy        Kind = "busy"
	KindQuery       Kind = "query"
)

// Error is returned by every DB method that fails.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is maps store failures onto the domain sentinels. Failures while opening
// or migrating are unavailable whatever the code; every later statement
// failure is a query failure. Corrupt additionally matches ErrStoreCorrupt.
func (e *Error) Is(target error) bool {
	switch target {
	case domain.ErrStorageUnavailable:
		return e.atStartup() || e.Kind == KindUnavailable
	case domain.ErrStoreCorrupt:
		return e.Kind == KindCorrupt
	case domain.ErrQueryFailure:
		return !e.atStartup()
	}
	return false
}

func (e *Error) atStartup() bool {
	return e.Op == OpOpen || e.Op == OpMigrate
}

func newError(op string, err error) *Error {
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	e := &Error{Op: op, Kind: classify(err), Err: err}
	metrics.StoreStatementErrors.WithLabelValues(op, string(e.Kind)).Inc()
	return e
}

// classify maps a driver error onto a Kind using the SQLite primary result code.
func classify(err error) Kind {
	if err == nil {
		return ""
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_CONSTRAINT:
			return KindConstraint
		case sqlite3lib.SQLITE_CORRUPT, sqlite3lib.SQLITE_NOTADB:
			return KindCorrupt
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return KindBusy
		case sqlite3lib.SQLITE_IOERR, sqlite3lib.SQLITE_FULL:
			return KindIO
		case sqlite3lib.SQLITE_CANTOPEN, sqlite3lib.SQLITE_PERM, sqlite3lib.SQLITE_READONLY:
			return KindUnavailable
		default:
			return KindQuery
		}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return KindUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindBusy
	}
	return KindQuery
}
