package game

import (
	"time"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// EventType identifies an outbound room event.
type EventType string

const (
	EventTypeRoundStarted EventType = "round_started"
	EventTypeCardsDealt   EventType = "cards_dealt"
	EventTypeTurnApplied  EventType = "turn_applied"
	EventTypeTimerStarted EventType = "timer_started"
	EventTypeTimerExpired EventType = "timer_expired"
	EventTypeReveal       EventType = "reveal"
	EventTypeGameEnded    EventType = "game_ended"
	EventTypeRoomState    EventType = "room_state"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is any notification the engine emits to its collaborators. The
// transport layer subscribes and forwards; the engine never blocks on it.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// Subscriber receives every published event.
type Subscriber interface {
	HandleEvent(Event)
}

// EventBus fans events out to subscribers synchronously in subscribe order.
type EventBus interface {
	Publish(Event)
	Subscribe(Subscriber)
}

type eventBus struct {
	subscribers []Subscriber
}

// NewEventBus creates an empty synchronous event bus.
func NewEventBus() EventBus {
	return &eventBus{}
}

func (b *eventBus) Publish(e Event) {
	for _, s := range b.subscribers {
		s.HandleEvent(e)
	}
}

func (b *eventBus) Subscribe(s Subscriber) {
	b.subscribers = append(b.subscribers, s)
}

// RoundStartedEvent fires when a new hand begins dealing.
type RoundStartedEvent struct {
	RoomID     string
	HandNumber int
	Seed       string
	timestamp  time.Time
}

func (e RoundStartedEvent) EventType() EventType { return EventTypeRoundStarted }
func (e RoundStartedEvent) Timestamp() time.Time { return e.timestamp }

// CardsDealtEvent fires when a player receives a tranche of cards.
type CardsDealtEvent struct {
	PlayerID  string
	Cards     []deck.Card
	Phase     PhaseType
	Round     int
	timestamp time.Time
}

func (e CardsDealtEvent) EventType() EventType { return EventTypeCardsDealt }
func (e CardsDealtEvent) Timestamp() time.Time { return e.timestamp }

// TurnAppliedEvent fires after a turn commits, whether submitted by the
// player or auto-committed on timeout.
type TurnAppliedEvent struct {
	PlayerID      string
	Placements    []Placement
	Discard       *deck.Card
	AutoCommitted bool
	timestamp     time.Time
}

func (e TurnAppliedEvent) EventType() EventType { return EventTypeTurnApplied }
func (e TurnAppliedEvent) Timestamp() time.Time { return e.timestamp }

// TimerStartedEvent fires when a player's turn countdown begins.
type TimerStartedEvent struct {
	PlayerID  string
	Phase     PhaseType
	Deadline  time.Time
	Duration  time.Duration
	timestamp time.Time
}

func (e TimerStartedEvent) EventType() EventType { return EventTypeTimerStarted }
func (e TimerStartedEvent) Timestamp() time.Time { return e.timestamp }

// TimerExpiredEvent fires when a countdown lapses, immediately before the
// auto-placement turn is applied.
type TimerExpiredEvent struct {
	PlayerID  string
	Phase     PhaseType
	timestamp time.Time
}

func (e TimerExpiredEvent) EventType() EventType { return EventTypeTimerExpired }
func (e TimerExpiredEvent) Timestamp() time.Time { return e.timestamp }

// PairSettlement names the two sides of one pairwise result.
type PairSettlement struct {
	PlayerA string
	PlayerB string
	Result  PairResult
}

// RevealEvent fires when all boards are complete and settled.
type RevealEvent struct {
	RoomID          string
	HandNumber      int
	Boards          map[string]*Board
	Settlements     []PairSettlement
	FantasylandNext map[string]bool
	Chips           map[string]int
	timestamp       time.Time
}

func (e RevealEvent) EventType() EventType { return EventTypeReveal }
func (e RevealEvent) Timestamp() time.Time { return e.timestamp }

// GameEndedEvent fires when a chip threshold terminates the match.
type GameEndedEvent struct {
	RoomID     string
	WinnerID   string
	LoserID    string
	FinalChips map[string]int
	timestamp  time.Time
}

func (e GameEndedEvent) EventType() EventType { return EventTypeGameEnded }
func (e GameEndedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerSummary is the public per-player view carried by RoomStateEvent.
type PlayerSummary struct {
	PlayerID      string
	Round         int
	Ready         bool
	InFantasyland bool
	TableChips    int
	BoardCards    int
}

// RoomStateEvent fires on every phase transition.
type RoomStateEvent struct {
	RoomID     string
	Phase      RoomPhase
	HandNumber int
	Players    []PlayerSummary
	timestamp  time.Time
}

func (e RoomStateEvent) EventType() EventType { return EventTypeRoomState }
func (e RoomStateEvent) Timestamp() time.Time { return e.timestamp }
