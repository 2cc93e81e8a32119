package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/repository"
)

// SnapshotRepository implements the snapshot repository for SQLite.
// Both container tables share one implementation; only the slot_type
// column differs.
type SnapshotRepository struct {
	db *database.DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *database.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

type tableQueries struct {
	delete string
	insert string
	list   string
	kinded bool
}

var snapshotQueries = map[string]tableQueries{
	domain.TableInventories: {
		delete: `DELETE FROM inventories WHERE xuid = ?`,
		insert: `INSERT INTO inventories
			(xuid, name, slot_type, slot, type, amount, damage, display_name, enchants, lore, unbreakable, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		list: `SELECT id, xuid, name, slot_type, slot, type, amount, damage, display_name, enchants, lore, unbreakable, data
			FROM inventories WHERE xuid = ? ORDER BY id`,
		kinded: true,
	},
	domain.TableEnderChests: {
		delete: `DELETE FROM ender_chests WHERE xuid = ?`,
		insert: `INSERT INTO ender_chests
			(xuid, name, slot, type, amount, damage, display_name, enchants, lore, unbreakable, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		list: `SELECT id, xuid, name, '' AS slot_type, slot, type, amount, damage, display_name, enchants, lore, unbreakable, data
			FROM ender_chests WHERE xuid = ? ORDER BY id`,
	},
}

func queriesFor(table string) (tableQueries, error) {
	q, ok := snapshotQueries[table]
	if !ok {
		return tableQueries{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownTable, table)
	}
	return q, nil
}

// ReplaceSlots swaps the stored snapshot for xuid in one transaction, so a
// concurrent reader sees either the old set or the new one.
func (r *SnapshotRepository) ReplaceSlots(ctx context.Context, table, xuid string, rows []repository.SlotRow) error {
	q, err := queriesFor(table)
	if err != nil {
		return err
	}

	err = r.db.WriteTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, q.delete, xuid); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, q.insert)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, row := range rows {
			args := []any{xuid, row.Name}
			if q.kinded {
				args = append(args, row.Kind)
			}
			args = append(args,
				row.Slot, row.Type, row.Amount, row.Damage, row.DisplayName,
				row.Enchants, row.Lore, row.Unbreakable, row.Data)
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReplaceSlots, err)
	}
	return nil
}

// ListSlots returns the stored rows for xuid with loose columns left raw.
func (r *SnapshotRepository) ListSlots(ctx context.Context, table, xuid string) ([]repository.SlotRow, error) {
	q, err := queriesFor(table)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryRead(ctx, q.list, xuid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListSlots, err)
	}
	defer rows.Close()

	out := []repository.SlotRow{}
	for rows.Next() {
		var (
			row        repository.SlotRow
			name, kind sql.NullString
		)
		if err := rows.Scan(
			&row.ID, &row.XUID, &name, &kind,
			&row.Slot, &row.Type, &row.Amount, &row.Damage, &row.DisplayName,
			&row.Enchants, &row.Lore, &row.Unbreakable, &row.Data,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanSlot, r.db.WrapReadError(ctx, err))
		}
		row.Name = name.String
		row.Kind = kind.String
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListSlots, r.db.WrapReadError(ctx, err))
	}
	return out, nil
}
