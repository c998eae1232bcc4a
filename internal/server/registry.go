package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// roomEntry pairs a room with the mutex that serialises its events. Rooms
// are single-threaded by contract; distinct rooms proceed in parallel.
type roomEntry struct {
	mu   sync.Mutex
	room *game.Room
}

// Registry owns the id-to-room mapping. Lifecycle (create on demand, delete
// when empty) belongs to the caller, not the engine.
type Registry struct {
	mu     sync.RWMutex
	logger *log.Logger
	clock  quartz.Clock
	rooms  map[string]*roomEntry
}

// NewRegistry constructs an empty registry.
func NewRegistry(logger *log.Logger, clock quartz.Clock) *Registry {
	return &Registry{
		logger: logger.WithPrefix("registry"),
		clock:  clock,
		rooms:  make(map[string]*roomEntry),
	}
}

// Create builds a new room under a fresh id.
func (r *Registry) Create(rules *game.Rules, opts ...game.RoomOption) *game.Room {
	id := uuid.NewString()
	room := game.NewRoom(id, rules, r.clock, r.logger, opts...)

	r.mu.Lock()
	r.rooms[id] = &roomEntry{room: room}
	r.mu.Unlock()

	r.logger.Info("room created", "room", id)
	return room
}

// Get returns the room for an id.
func (r *Registry) Get(id string) (*game.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.rooms[id]
	if !ok {
		return nil, false
	}
	return entry.room, true
}

// Delete removes a room from the registry.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return false
	}
	delete(r.rooms, id)
	r.logger.Info("room deleted", "room", id)
	return true
}

// IDs returns the ids of all registered rooms.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	return ids
}

// withRoom runs fn holding the room's serialisation lock.
func (r *Registry) withRoom(id string, fn func(*game.Room) error) error {
	r.mu.RLock()
	entry, ok := r.rooms[id]
	r.mu.RUnlock()
	if !ok {
		return ErrRoomNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.room)
}
