package server

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestService(t *testing.T) (*GameService, *Registry, *quartz.Mock) {
	t.Helper()
	logger := testLogger()
	mockClock := quartz.NewMock(t)
	registry := NewRegistry(logger, mockClock)
	svc := NewGameService(DefaultConfig(), registry, mockClock, logger)
	return svc, registry, mockClock
}

func submitAuto(t *testing.T, svc *GameService, registry *Registry, roomID, playerID string) {
	t.Helper()
	room, ok := registry.Get(roomID)
	require.True(t, ok)
	p, ok := room.Player(playerID)
	require.True(t, ok)
	auto := game.AutoPlace(p)
	require.NoError(t, svc.SubmitTurn(roomID, playerID, auto.Placements, auto.Discard))
}

func TestRegistryLifecycle(t *testing.T) {
	t.Parallel()

	_, registry, _ := newTestService(t)

	room := registry.Create(game.DefaultRules())
	got, ok := registry.Get(room.ID())
	require.True(t, ok)
	assert.Same(t, room, got)
	assert.Contains(t, registry.IDs(), room.ID())

	assert.True(t, registry.Delete(room.ID()))
	assert.False(t, registry.Delete(room.ID()), "second delete is a no-op")
	_, ok = registry.Get(room.ID())
	assert.False(t, ok)
}

func TestServiceUnknownRoom(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	assert.ErrorIs(t, svc.Seat("nope", "p1"), ErrRoomNotFound)
	assert.ErrorIs(t, svc.Ready("nope", "p1"), ErrRoomNotFound)
	assert.ErrorIs(t, svc.SubmitTurn("nope", "p1", nil, nil), ErrRoomNotFound)
	assert.ErrorIs(t, svc.Leave("nope", "p1"), ErrRoomNotFound)

	_, active := svc.TimeRemaining("nope", "p1")
	assert.False(t, active)
}

func TestServiceSeatLimit(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	roomID := svc.CreateRoom()

	require.NoError(t, svc.Seat(roomID, "p1"))
	require.NoError(t, svc.Seat(roomID, "p2"))
	assert.Error(t, svc.Seat(roomID, "p3"), "seat past max_room_players must fail")
}

func TestServiceHandFlow(t *testing.T) {
	t.Parallel()

	svc, registry, _ := newTestService(t)
	roomID := svc.CreateRoom()

	require.NoError(t, svc.Seat(roomID, "p1"))
	require.NoError(t, svc.Seat(roomID, "p2"))
	require.NoError(t, svc.Ready(roomID, "p1"))
	require.NoError(t, svc.Ready(roomID, "p2"))

	room, _ := registry.Get(roomID)
	require.Equal(t, game.RoomPlaying, room.Phase())

	ms, active := svc.TimeRemaining(roomID, "p1")
	require.True(t, active)
	assert.Positive(t, ms)

	for round := 1; round <= game.FinalRound; round++ {
		submitAuto(t, svc, registry, roomID, "p1")
		submitAuto(t, svc, registry, roomID, "p2")
	}
	assert.Equal(t, game.RoomReveal, room.Phase())
}

func TestServiceLeaveDeletesEmptyRoom(t *testing.T) {
	t.Parallel()

	svc, registry, _ := newTestService(t)
	roomID := svc.CreateRoom()

	require.NoError(t, svc.Seat(roomID, "p1"))
	require.NoError(t, svc.Leave(roomID, "p1"))

	_, ok := registry.Get(roomID)
	assert.False(t, ok, "empty room should be deleted")
}

func TestServiceCheckExpiredTimers(t *testing.T) {
	t.Parallel()

	svc, _, mockClock := newTestService(t)

	// Two rooms in play; the sweep resolves every lapsed timer across both.
	for i := 0; i < 2; i++ {
		roomID := svc.CreateRoom()
		require.NoError(t, svc.Seat(roomID, "p1"))
		require.NoError(t, svc.Seat(roomID, "p2"))
		require.NoError(t, svc.Ready(roomID, "p1"))
		require.NoError(t, svc.Ready(roomID, "p2"))
	}

	assert.Zero(t, svc.CheckExpiredTimers(), "no timers lapsed yet")

	mockClock.Advance(DefaultConfig().GameRules().InitialSetTimeout)
	assert.Equal(t, 4, svc.CheckExpiredTimers())
	assert.Zero(t, svc.CheckExpiredTimers(), "expiry resolves exactly once")
}
