package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgQueryFailure       = "query failed"
	ErrMsgStoreCorrupt       = "storage file is corrupt"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// ErrStorageUnavailable means the backing file could not be opened or created.
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	// ErrQueryFailure means a single statement failed.
	ErrQueryFailure = errors.New(ErrMsgQueryFailure)
	// ErrStoreCorrupt is a QueryFailure caused by a damaged database file.
	ErrStoreCorrupt = errors.New(ErrMsgStoreCorrupt)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
