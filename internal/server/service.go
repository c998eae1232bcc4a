package server

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// ErrRoomNotFound is returned for operations against unknown room ids.
var ErrRoomNotFound = errors.New("room not found")

// GameService is the entrypoint the transport and scheduling collaborators
// call. Every operation on one room runs under that room's lock, so the
// engine sees a strictly serialised event stream; independent rooms are
// processed concurrently.
type GameService struct {
	logger   *log.Logger
	clock    quartz.Clock
	registry *Registry
	rules    *game.Rules
	maxSeats int
}

// NewGameService wires a service over a registry.
func NewGameService(cfg *Config, registry *Registry, clock quartz.Clock, logger *log.Logger) *GameService {
	return &GameService{
		logger:   logger.WithPrefix("service"),
		clock:    clock,
		registry: registry,
		rules:    cfg.GameRules(),
		maxSeats: cfg.Server.MaxRoomPlayers,
	}
}

// CreateRoom creates a room and returns its id.
func (s *GameService) CreateRoom(opts ...game.RoomOption) string {
	return s.registry.Create(s.rules, opts...).ID()
}

// Seat adds a player to a lobby room.
func (s *GameService) Seat(roomID, playerID string) error {
	return s.registry.withRoom(roomID, func(r *game.Room) error {
		if len(r.Players()) >= s.maxSeats {
			return fmt.Errorf("room %s is full", roomID)
		}
		return r.Seat(playerID)
	})
}

// Leave removes a lobby player; the room is deleted once empty.
func (s *GameService) Leave(roomID, playerID string) error {
	var empty bool
	err := s.registry.withRoom(roomID, func(r *game.Room) error {
		if err := r.Leave(playerID); err != nil {
			return err
		}
		empty = r.Empty()
		return nil
	})
	if err != nil {
		return err
	}
	if empty {
		s.registry.Delete(roomID)
	}
	return nil
}

// Ready marks a lobby player ready; the hand starts when everyone is.
func (s *GameService) Ready(roomID, playerID string) error {
	return s.registry.withRoom(roomID, func(r *game.Room) error {
		return r.SetReady(playerID)
	})
}

// SubmitTurn applies a player's placements and optional discard.
func (s *GameService) SubmitTurn(roomID, playerID string, placements []game.Placement, discard *deck.Card) error {
	return s.registry.withRoom(roomID, func(r *game.Room) error {
		return r.SubmitTurn(playerID, placements, discard)
	})
}

// CheckExpiredTimers sweeps every room once, resolving lapsed turn timers
// through auto-placement and rolling elapsed reveal countdowns into the next
// hand. The external scheduler calls this periodically. It returns the
// count of auto-committed turns.
func (s *GameService) CheckExpiredTimers() int {
	total := 0
	for _, id := range s.registry.IDs() {
		_ = s.registry.withRoom(id, func(r *game.Room) error {
			expired := r.CheckTimers()
			if len(expired) > 0 {
				s.logger.Debug("auto-committed turns", "room", id, "players", expired)
			}
			total += len(expired)
			return nil
		})
	}
	return total
}

// TimeRemaining reports what is left on a player's countdown, in
// milliseconds, for outbound state snapshots.
func (s *GameService) TimeRemaining(roomID, playerID string) (int64, bool) {
	var ms int64
	var active bool
	err := s.registry.withRoom(roomID, func(r *game.Room) error {
		ms, active = r.TimeRemaining(playerID)
		return nil
	})
	if err != nil {
		return 0, false
	}
	return ms, active
}
