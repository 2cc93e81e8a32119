package handler

import (
	"context"
	"net/http"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
)

// SnapshotWarning is a stored field that was replaced by its default on read.
type SnapshotWarning struct {
	RowID int64  `json:"row_id"`
	Field string `json:"field"`
}

// SnapshotResponse is a decoded container snapshot.
type SnapshotResponse struct {
	XUID     string              `json:"xuid"`
	Items    []domain.SlotRecord `json:"items"`
	Warnings []SnapshotWarning   `json:"warnings,omitempty"`
}

// HandleSaveInventory handles PUT /inventories.
func HandleSaveInventory(svc snapshot.Service) http.HandlerFunc {
	return handleSaveSnapshot(OpSaveInventory, MsgInventorySaved, svc.SaveInventory)
}

// HandleSaveEnderChest handles PUT /enderchests.
func HandleSaveEnderChest(svc snapshot.Service) http.HandlerFunc {
	return handleSaveSnapshot(OpSaveEnderChest, MsgEnderChestSaved, svc.SaveEnderChest)
}

// HandleGetInventory handles GET /inventories/{xuid}.
func HandleGetInventory(svc snapshot.Service) http.HandlerFunc {
	return handleGetSnapshot(OpGetInventory, domain.TableInventories, svc)
}

// HandleGetEnderChest handles GET /enderchests/{xuid}.
func HandleGetEnderChest(svc snapshot.Service) http.HandlerFunc {
	return handleGetSnapshot(OpGetEnderChest, domain.TableEnderChests, svc)
}

func handleSaveSnapshot(opName, okMsg string, save func(context.Context, snapshot.Player) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state snapshot.PlayerState
		if err := DecodeAndValidateRequest(r, w, &state, opName); err != nil {
			return
		}

		if err := save(r.Context(), &state); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: okMsg})
	}
}

func handleGetSnapshot(opName, table string, svc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		xuid, ok := GetPathParam(r, w, ParamXUID)
		if !ok {
			return
		}

		res, err := svc.Load(r.Context(), table, xuid)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		resp := SnapshotResponse{XUID: xuid, Items: res.Records}
		for _, f := range res.Failures {
			resp.Warnings = append(resp.Warnings, SnapshotWarning{RowID: f.RowID, Field: f.Field})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
