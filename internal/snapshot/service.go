// Package snapshot converts live player containers to stored rows and back,
// and saves or loads whole inventory and ender chest snapshots.
package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/logger"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
	"github.com/osse101/InventoryManager_Go/internal/repository"
)

// Service defines the snapshot operations.
type Service interface {
	SaveInventory(ctx context.Context, player Player) error
	GetInventory(ctx context.Context, xuid string) ([]domain.SlotRecord, error)
	SaveEnderChest(ctx context.Context, player Player) error
	GetEnderChest(ctx context.Context, xuid string) ([]domain.SlotRecord, error)

	// Load is GetInventory/GetEnderChest for table, keeping the decode failures.
	Load(ctx context.Context, table, xuid string) (*Result, error)
}

type service struct {
	repo     repository.Snapshot
	reporter FailureReporter
}

// NewService creates a snapshot service. A nil reporter logs and counts failures.
func NewService(repo repository.Snapshot, reporter FailureReporter) Service {
	if reporter == nil {
		reporter = LogReporter{}
	}
	return &service{repo: repo, reporter: reporter}
}

func (s *service) SaveInventory(ctx context.Context, player Player) error {
	xuid, err := playerXUID(player)
	if err != nil {
		return err
	}
	inv := player.Inventory()
	if inv == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilInventory)
	}

	rows := EncodeInventory(player.Name(), inv)
	if err := s.repo.ReplaceSlots(ctx, domain.TableInventories, xuid, rows); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveInventory, err)
	}
	s.recordSave(ctx, domain.TableInventories, xuid, len(rows))
	return nil
}

func (s *service) SaveEnderChest(ctx context.Context, player Player) error {
	xuid, err := playerXUID(player)
	if err != nil {
		return err
	}
	chest := player.EnderChest()
	if chest == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilEnderChest)
	}

	rows := EncodeEnderChest(player.Name(), chest)
	if err := s.repo.ReplaceSlots(ctx, domain.TableEnderChests, xuid, rows); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveEnderChest, err)
	}
	s.recordSave(ctx, domain.TableEnderChests, xuid, len(rows))
	return nil
}

func (s *service) GetInventory(ctx context.Context, xuid string) ([]domain.SlotRecord, error) {
	res, err := s.Load(ctx, domain.TableInventories, xuid)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

func (s *service) GetEnderChest(ctx context.Context, xuid string) ([]domain.SlotRecord, error) {
	res, err := s.Load(ctx, domain.TableEnderChests, xuid)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

func (s *service) Load(ctx context.Context, table, xuid string) (*Result, error) {
	if strings.TrimSpace(xuid) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingXUID)
	}
	if !repository.IsSnapshotTable(table) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, table)
	}

	rows, err := s.repo.ListSlots(ctx, table, xuid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSnapshot, err)
	}

	res := Decode(table, xuid, rows)
	for _, f := range res.Failures {
		s.reporter.ReportDecodeFailure(ctx, f)
	}
	return &res, nil
}

func (s *service) recordSave(ctx context.Context, table, xuid string, n int) {
	metrics.SnapshotsSaved.WithLabelValues(table).Inc()
	metrics.SnapshotRowsWritten.WithLabelValues(table).Observe(float64(n))
	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "table", table, "xuid", xuid, "rows", n)
}

func playerXUID(player Player) (string, error) {
	if player == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilPlayer)
	}
	xuid := strings.TrimSpace(player.XUID())
	if xuid == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingXUID)
	}
	return xuid, nil
}
