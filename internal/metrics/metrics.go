package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Store Metrics
var (
	StoreWriteLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStoreWriteLockWait,
			Help:    HelpTextStoreWriteLockWait,
			Buckets: LockWaitBuckets,
		},
	)

	StoreStatementErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreStatementError,
			Help: HelpTextStoreStatementError,
		},
		[]string{LabelOp, LabelKind},
	)
)

// Snapshot Metrics
var (
	SnapshotsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsSaved,
			Help: HelpTextSnapshotsSaved,
		},
		[]string{LabelContainer},
	)

	SnapshotRowsWritten = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSnapshotRowsWritten,
			Help:    HelpTextSnapshotRowsWritten,
			Buckets: SnapshotRowBuckets,
		},
		[]string{LabelContainer},
	)

	DecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecodeFailures,
			Help: HelpTextDecodeFailures,
		},
		[]string{LabelContainer, LabelField},
	)

	UserCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUserCacheLookups,
			Help: HelpTextUserCacheLookups,
		},
		[]string{LabelResult},
	)
)
