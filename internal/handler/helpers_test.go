package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/database/sqlite"
	"github.com/osse101/InventoryManager_Go/internal/lifecycle"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

type testServices struct {
	db        *database.DB
	users     user.Service
	snapshots snapshot.Service
	lifecycle *lifecycle.Manager
}

func setupServices(t *testing.T) testServices {
	t.Helper()
	db, err := database.Open(context.Background(), database.Options{Path: filepath.Join(t.TempDir(), "store.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := user.NewService(sqlite.NewUserRepository(db), user.DefaultCacheConfig())
	snaps := snapshot.NewService(sqlite.NewSnapshotRepository(db), nil)
	return testServices{db: db, users: users, snapshots: snaps, lifecycle: lifecycle.NewManager(users, snaps)}
}

func ptr[T any](v T) *T { return &v }

func fixedClock(t *testing.T, ts int64) {
	t.Helper()
	prev := nowUnix
	nowUnix = func() int64 { return ts }
	t.Cleanup(func() { nowUnix = prev })
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// withURLParams attaches chi route params to a request built outside a router.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
