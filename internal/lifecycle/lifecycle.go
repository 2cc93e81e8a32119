// Package lifecycle ties a player's join and leave to the identity index
// and both container snapshots.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/InventoryManager_Go/internal/logger"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

const (
	ErrMsgJoin          = "join failed"
	ErrMsgLeave         = "leave failed"
	ErrMsgSnapshot      = "snapshot failed"
	LogMsgPlayerJoined  = "Player joined"
	LogMsgPlayerLeft    = "Player left"
	LogMsgSnapshotError = "Snapshot not saved"
)

// Manager handles join and leave events.
type Manager struct {
	users     user.Service
	snapshots snapshot.Service
}

// NewManager creates a Manager.
func NewManager(users user.Service, snapshots snapshot.Service) *Manager {
	return &Manager{users: users, snapshots: snapshots}
}

// HandleJoin records the join, then snapshots inventory and ender chest.
// A failed identity write aborts; snapshot failures are joined and returned
// after both snapshots were attempted.
func (m *Manager) HandleJoin(ctx context.Context, player snapshot.Player, ts int64) error {
	if err := m.users.SaveUser(ctx, xuidOf(player), nameOf(player), ts); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgJoin, err)
	}
	if err := m.saveSnapshots(ctx, player); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgJoin, err)
	}
	logger.FromContext(ctx).Info(LogMsgPlayerJoined, "xuid", player.XUID(), "name", player.Name())
	return nil
}

// HandleLeave records the leave time, then snapshots both containers.
func (m *Manager) HandleLeave(ctx context.Context, player snapshot.Player, ts int64) error {
	if err := m.users.UpdateLeaveTime(ctx, xuidOf(player), ts); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLeave, err)
	}
	if err := m.saveSnapshots(ctx, player); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLeave, err)
	}
	logger.FromContext(ctx).Info(LogMsgPlayerLeft, "xuid", player.XUID(), "name", player.Name())
	return nil
}

func (m *Manager) saveSnapshots(ctx context.Context, player snapshot.Player) error {
	var errs []error
	if err := m.snapshots.SaveInventory(ctx, player); err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotError, "container", "inventory", "error", err)
		errs = append(errs, err)
	}
	if err := m.snapshots.SaveEnderChest(ctx, player); err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotError, "container", "ender_chest", "error", err)
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSnapshot, err)
	}
	return nil
}

func xuidOf(p snapshot.Player) string {
	if p == nil {
		return ""
	}
	return p.XUID()
}

func nameOf(p snapshot.Player) string {
	if p == nil {
		return ""
	}
	return p.Name()
}
