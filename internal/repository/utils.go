package repository

import "github.com/osse101/InventoryManager_Go/internal/domain"

// IsSnapshotTable reports whether table holds container snapshots.
func IsSnapshotTable(table string) bool {
	return table == domain.TableInventories || table == domain.TableEnderChests
}
