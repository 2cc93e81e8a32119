package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/database/sqlite"
	"github.com/osse101/InventoryManager_Go/internal/lifecycle"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.Open(context.Background(), database.Options{Path: filepath.Join(t.TempDir(), "store.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := user.NewService(sqlite.NewUserRepository(db), user.DefaultCacheConfig())
	snaps := snapshot.NewService(sqlite.NewSnapshotRepository(db), nil)

	return NewRouter(
		Options{APIKey: testAPIKey, RateLimitRPS: 1000, RateLimitBurst: 1000},
		Dependencies{Store: db, Users: users, Snapshots: snaps, Lifecycle: lifecycle.NewManager(users, snaps)},
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const joinBody = `{
	"timestamp": 1700000000,
	"player": {
		"xuid": "2535400000000001",
		"name": "Alex_Builder",
		"inventory": {"slots": [{"type": "minecraft:diamond_sword", "amount": 1, "damage": 12}]},
		"ender_chest": {"slots": [{"type": "minecraft:shulker_box", "amount": 1}]}
	}
}`

func TestRouter_JoinThenLookup(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/v1/users/join", joinBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/v1/users/2535400000000001", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Alex_Builder")

	w = do(t, h, http.MethodGet, "/api/v1/users/find?name=alex", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "2535400000000001")

	w = do(t, h, http.MethodGet, "/api/v1/inventories/2535400000000001", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "minecraft:diamond_sword")

	w = do(t, h, http.MethodGet, "/api/v1/enderchests/2535400000000001", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "minecraft:shulker_box")
}

func TestRouter_LeaveRecordsTimestamp(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/users/join", joinBody).Code)

	leave := strings.Replace(joinBody, "1700000000", "1700003600", 1)
	w := do(t, h, http.MethodPost, "/api/v1/users/leave", leave)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/v1/users/2535400000000001", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		LastLeave int64 `json:"last_leave"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1700003600, resp.LastLeave)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/search?name=a", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_HealthEndpoints(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType), path)
	}
}

func TestRouter_UnknownUser(t *testing.T) {
	h := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/api/v1/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
