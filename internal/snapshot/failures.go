package snapshot

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryManager_Go/internal/logger"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
)

// DecodeFailure describes one stored field that was replaced by its default.
type DecodeFailure struct {
	XUID  string `json:"xuid"`
	Table string `json:"table"`
	RowID int64  `json:"row_id"`
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (f DecodeFailure) Error() string {
	return fmt.Sprintf("%s row %d field %s: %v", f.Table, f.RowID, f.Field, f.Err)
}

func (f DecodeFailure) Unwrap() error { return f.Err }

// FailureReporter receives decode failures as a side channel; reads never fail on them.
type FailureReporter interface {
	ReportDecodeFailure(ctx context.Context, failure DecodeFailure)
}

// LogReporter logs each failure at warn level and counts it.
type LogReporter struct{}

func (LogReporter) ReportDecodeFailure(ctx context.Context, f DecodeFailure) {
	logger.FromContext(ctx).Warn(LogMsgDecodeFailure,
		"xuid", f.XUID,
		"table", f.Table,
		"row_id", f.RowID,
		"field", f.Field,
		"error", f.Err)
	metrics.DecodeFailures.WithLabelValues(f.Table, f.Field).Inc()
}
