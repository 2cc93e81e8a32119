package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1024

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// Cache key prefixes
const (
	cacheKeyXUID = "xuid:"
	cacheKeyName = "name:"
)

// ============================================================================
// Messages
// ============================================================================

const (
	ErrMsgMissingXUID  = "xuid is required"
	ErrMsgMissingName  = "name is required"
	ErrMsgNegativeTime = "timestamp must not be negative"
	ErrMsgSaveUser     = "failed to save user"
	ErrMsgUpdateLeave  = "failed to record leave"
	ErrMsgFindUser     = "failed to find user"
	ErrMsgSearchUsers  = "failed to search users"
	ErrMsgGetUser      = "failed to get user"
	LogMsgUserSaved    = "User saved"
	LogMsgLeaveUnknown = "Leave recorded for unknown user"
)
