package repository

import (
	"context"
)

// SlotRow is the storage shape of one occupied slot. Read paths leave the
// loose columns as the raw driver values so a decoder can default them field
// by field; write paths store already-encoded values.
type SlotRow struct {
	ID   int64
	XUID string
	Name string
	// Kind is empty for ender chest rows, which have no slot_type column.
	Kind string

	Slot        any
	Type        any
	Amount      any
	Damage      any
	DisplayName any
	Enchants    any
	Lore        any
	Unbreakable any
	Data        any
}

// Snapshot defines the interface for container snapshot persistence.
// table is domain.TableInventories or domain.TableEnderChests.
type Snapshot interface {
	// ReplaceSlots deletes every row for xuid and inserts rows in one transaction.
	ReplaceSlots(ctx context.Context, table, xuid string, rows []SlotRow) error
	ListSlots(ctx context.Context, table, xuid string) ([]SlotRow, error)
}
