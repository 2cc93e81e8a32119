package lifecycle

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/database/sqlite"
	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

func steve() *snapshot.PlayerState {
	return &snapshot.PlayerState{
		ID:         "x1",
		PlayerName: "Steve",
		Inv: snapshot.InventoryState{ContainerState: snapshot.ContainerState{Slots: []*snapshot.ItemStack{
			{Type: "minecraft:torch", Amount: 16},
		}}},
		Ender: snapshot.ContainerState{Slots: []*snapshot.ItemStack{
			nil, {Type: "minecraft:emerald", Amount: 5},
		}},
	}
}

func TestJoinAndLeave(t *testing.T) {
	db, err := database.Open(context.Background(), database.Options{Path: filepath.Join(t.TempDir(), "store.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := user.NewService(sqlite.NewUserRepository(db), user.DefaultCacheConfig())
	snaps := snapshot.NewService(sqlite.NewSnapshotRepository(db), nil)
	mgr := NewManager(users, snaps)
	ctx := context.Background()

	player := steve()
	require.NoError(t, mgr.HandleJoin(ctx, player, 100))

	u, err := users.GetUser(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), u.LastJoin)

	inv, err := snaps.GetInventory(ctx, "x1")
	require.NoError(t, err)
	require.Len(t, inv, 1)

	player.Ender.Slots = nil
	require.NoError(t, mgr.HandleLeave(ctx, player, 200))

	u, err = users.GetUser(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), u.LastLeave)

	ender, err := snaps.GetEnderChest(ctx, "x1")
	require.NoError(t, err)
	assert.Empty(t, ender)
}

type MockSnapshots struct {
	mock.Mock
	snapshot.Service
}

func (m *MockSnapshots) SaveInventory(ctx context.Context, p snapshot.Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSnapshots) SaveEnderChest(ctx context.Context, p snapshot.Player) error {
	return m.Called(ctx, p).Error(0)
}

type MockUsers struct {
	mock.Mock
	user.Service
}

func (m *MockUsers) SaveUser(ctx context.Context, xuid, name string, ts int64) error {
	return m.Called(ctx, xuid, name, ts).Error(0)
}

func (m *MockUsers) UpdateLeaveTime(ctx context.Context, xuid string, ts int64) error {
	return m.Called(ctx, xuid, ts).Error(0)
}

func TestSnapshotFailuresAreJoined(t *testing.T) {
	ctx := context.Background()
	player := steve()

	users := new(MockUsers)
	snaps := new(MockSnapshots)
	users.On("SaveUser", ctx, "x1", "Steve", int64(5)).Return(nil)
	invErr := errors.New("inventory write")
	snaps.On("SaveInventory", ctx, player).Return(invErr)
	snaps.On("SaveEnderChest", ctx, player).Return(domain.ErrStorageUnavailable)

	err := NewManager(users, snaps).HandleJoin(ctx, player, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, invErr)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	snaps.AssertNumberOfCalls(t, "SaveEnderChest", 1)
}

func TestIdentityFailureAborts(t *testing.T) {
	ctx := context.Background()
	player := steve()

	users := new(MockUsers)
	snaps := new(MockSnapshots)
	users.On("UpdateLeaveTime", ctx, "x1", int64(7)).Return(domain.ErrQueryFailure)

	err := NewManager(users, snaps).HandleLeave(ctx, player, 7)
	assert.ErrorIs(t, err, domain.ErrQueryFailure)
	assert.Contains(t, err.Error(), ErrMsgLeave)
	snaps.AssertNotCalled(t, "SaveInventory", mock.Anything, mock.Anything)
}
