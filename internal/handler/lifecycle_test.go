package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleHandlers(t *testing.T) {
	svcs := setupServices(t)
	fixedClock(t, 777)
	ctx := context.Background()

	joinBody := `{"player":` + inventoryBody + `,"timestamp":500}`
	w := serve(HandleJoin(svcs.lifecycle), httptest.NewRequest(http.MethodPost, "/api/v1/users/join", strings.NewReader(joinBody)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	u, err := svcs.users.GetUser(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), u.LastJoin)

	inv, err := svcs.snapshots.GetInventory(ctx, "x1")
	require.NoError(t, err)
	assert.Len(t, inv, 2)

	ender, err := svcs.snapshots.GetEnderChest(ctx, "x1")
	require.NoError(t, err)
	assert.Len(t, ender, 1)

	leaveBody := `{"player":{"xuid":"x1","name":"Steve"}}`
	w = serve(HandleLeave(svcs.lifecycle), httptest.NewRequest(http.MethodPost, "/api/v1/users/leave", strings.NewReader(leaveBody)))
	require.Equal(t, http.StatusOK, w.Code)

	u, err = svcs.users.GetUser(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, int64(777), u.LastLeave)

	inv, err = svcs.snapshots.GetInventory(ctx, "x1")
	require.NoError(t, err)
	assert.Empty(t, inv, "leave snapshot replaces the join snapshot")
}

func TestLifecycleRejectsMissingPlayer(t *testing.T) {
	svcs := setupServices(t)
	w := serve(HandleJoin(svcs.lifecycle), httptest.NewRequest(http.MethodPost, "/api/v1/users/join", strings.NewReader(`{"timestamp":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLifecycleKeepsZeroTimestamp(t *testing.T) {
	svcs := setupServices(t)
	fixedClock(t, 777)

	body := `{"player":` + inventoryBody + `,"timestamp":0}`
	w := serve(HandleJoin(svcs.lifecycle), httptest.NewRequest(http.MethodPost, "/api/v1/users/join", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	u, err := svcs.users.GetUser(context.Background(), "x1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.LastJoin)
}
