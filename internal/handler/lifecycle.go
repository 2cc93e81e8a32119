package handler

import (
	"context"
	"net/http"

	"github.com/osse101/InventoryManager_Go/internal/lifecycle"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
)

// LifecycleRequest carries the player state at join or leave. Timestamp is
// unix seconds; omitted means now.
type LifecycleRequest struct {
	Player    snapshot.PlayerState `json:"player"`
	Timestamp *int64               `json:"timestamp,omitempty" validate:"omitempty,min=0"`
}

// LifecycleHandler is implemented by *lifecycle.Manager.
type LifecycleHandler interface {
	HandleJoin(ctx context.Context, player snapshot.Player, ts int64) error
	HandleLeave(ctx context.Context, player snapshot.Player, ts int64) error
}

var _ LifecycleHandler = (*lifecycle.Manager)(nil)

// HandleJoin handles POST /users/join.
func HandleJoin(mgr LifecycleHandler) http.HandlerFunc {
	return handleLifecycle(OpJoin, MsgJoinRecorded, mgr.HandleJoin)
}

// HandleLeave handles POST /users/leave.
func HandleLeave(mgr LifecycleHandler) http.HandlerFunc {
	return handleLifecycle(OpLeave, MsgLeaveSnapshotted, mgr.HandleLeave)
}

func handleLifecycle(opName, okMsg string, fn func(context.Context, snapshot.Player, int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LifecycleRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		if err := fn(r.Context(), &req.Player, timestampOr(req.Timestamp)); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: okMsg})
	}
}
