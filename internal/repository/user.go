package repository

import (
	"context"

	"github.com/osse101/InventoryManager_Go/internal/domain"
)

// User defines the interface for identity persistence
type User interface {
	// UpsertUser replaces the whole row, so last_leave goes back to 0.
	UpsertUser(ctx context.Context, user domain.User) error
	// UpdateLeaveTime reports whether a row was touched.
	UpdateLeaveTime(ctx context.Context, xuid string, leaveTS int64) (bool, error)
	GetUser(ctx context.Context, xuid string) (*domain.User, error)
	// SearchUsersByName matches users whose folded name contains folded,
	// most recent join first. limit <= 0 returns every match.
	SearchUsersByName(ctx context.Context, folded string, limit int) ([]domain.User, error)
}
