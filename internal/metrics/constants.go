package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Store metric names
const (
	MetricNameStoreWriteLockWait  = "store_write_lock_wait_seconds"
	MetricNameStoreStatementError = "store_statement_errors_total"
)

// Snapshot metric names
const (
	MetricNameSnapshotsSaved      = "snapshots_saved_total"
	MetricNameSnapshotRowsWritten = "snapshot_rows_written"
	MetricNameDecodeFailures      = "snapshot_decode_failures_total"
	MetricNameUserCacheLookups    = "user_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Store metric help text
const (
	HelpTextStoreWriteLockWait  = "Time spent waiting for the store write lock in seconds"
	HelpTextStoreStatementError = "Total number of failed store statements"
)

// Snapshot metric help text
const (
	HelpTextSnapshotsSaved      = "Total number of container snapshots saved"
	HelpTextSnapshotRowsWritten = "Number of occupied slots written per snapshot"
	HelpTextDecodeFailures      = "Total number of stored fields that failed to decode"
	HelpTextUserCacheLookups    = "Total number of identity cache lookups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelKind      = "kind"
	LabelOp        = "op"
	LabelContainer = "container"
	LabelField     = "field"
	LabelResult    = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// PathUnmatched labels requests that did not match any route.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LockWaitBuckets covers lock waits from 100µs to 5s.
var LockWaitBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// SnapshotRowBuckets covers empty containers up to a full inventory plus equipment.
var SnapshotRowBuckets = []float64{0, 1, 5, 10, 20, 27, 36, 41}
