package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// RoomPhase is the room-level state.
type RoomPhase int

const (
	RoomLobby RoomPhase = iota
	RoomPlaying
	RoomReveal
	RoomEnded
)

// String returns the phase name.
func (p RoomPhase) String() string {
	switch p {
	case RoomLobby:
		return "lobby"
	case RoomPlaying:
		return "playing"
	case RoomReveal:
		return "reveal"
	case RoomEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// HandCardCount is the number of cards reserved from the shuffled deck for
// one hand. Every player is dealt from the same 17-card slice by their own
// offset, so uniqueness of dealt cards holds per player.
const HandCardCount = 17

// SeedFunc derives the shuffle seed for a hand. The default generates a
// fresh random seed per hand; tests and replays inject a deterministic one.
type SeedFunc func(roomID string, handNumber int) string

// Room orchestrates all players in one match: dealing cadence, turn intake,
// round advancement (including the asymmetric mixed mode), reveal
// settlement, chip movement and fantasyland progression.
//
// Room methods are not safe for concurrent use. Events for one room must be
// applied one at a time; the hosting layer serialises access per room while
// distinct rooms proceed independently.
type Room struct {
	id     string
	rules  *Rules
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus
	stats  StatsSink
	seedFn SeedFunc

	phase      RoomPhase
	handNumber int
	handSeed   string
	handCards  []deck.Card

	players map[string]*PlayerState
	order   []string

	revealTimer *Timer
	winnerID    string
	loserID     string
}

// RoomOption customises room construction.
type RoomOption func(*Room)

// WithEventBus attaches a shared event bus.
func WithEventBus(bus EventBus) RoomOption {
	return func(r *Room) { r.bus = bus }
}

// WithStatsSink attaches a persistence collaborator for per-hand deltas.
func WithStatsSink(sink StatsSink) RoomOption {
	return func(r *Room) { r.stats = sink }
}

// WithSeedFunc overrides per-hand seed derivation.
func WithSeedFunc(fn SeedFunc) RoomOption {
	return func(r *Room) { r.seedFn = fn }
}

// NewRoom creates an empty room in the lobby phase.
func NewRoom(id string, rules *Rules, clock quartz.Clock, logger *log.Logger, opts ...RoomOption) *Room {
	r := &Room{
		id:      id,
		rules:   rules,
		clock:   clock,
		logger:  logger.WithPrefix("room").With("room", id),
		bus:     NewEventBus(),
		stats:   NopStatsSink{},
		seedFn:  func(string, int) string { return uuid.NewString() },
		phase:   RoomLobby,
		players: make(map[string]*PlayerState),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the room identifier.
func (r *Room) ID() string { return r.id }

// Phase returns the current room phase.
func (r *Room) Phase() RoomPhase { return r.phase }

// HandNumber returns the monotonic hand counter.
func (r *Room) HandNumber() int { return r.handNumber }

// HandSeed returns the shuffle seed of the current hand, for replay.
func (r *Room) HandSeed() string { return r.handSeed }

// Bus returns the room's event bus for subscribing collaborators.
func (r *Room) Bus() EventBus { return r.bus }

// Winner returns the match winner and loser ids once the room has ended.
func (r *Room) Winner() (winnerID, loserID string) { return r.winnerID, r.loserID }

// Player returns the state for a seated player.
func (r *Room) Player(id string) (*PlayerState, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Players returns all seated players in seating order.
func (r *Room) Players() []*PlayerState {
	out := make([]*PlayerState, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// Seat adds a player while the room is still in the lobby.
func (r *Room) Seat(playerID string) error {
	if r.phase != RoomLobby {
		return fmt.Errorf("cannot seat while %s", r.phase)
	}
	if _, ok := r.players[playerID]; ok {
		return fmt.Errorf("player %s already seated", playerID)
	}
	r.players[playerID] = NewPlayerState(playerID, r.rules.StartChips)
	r.order = append(r.order, playerID)
	r.logger.Info("player seated", "player", playerID, "seated", len(r.order))
	return nil
}

// Leave removes a player while the room is still in the lobby.
func (r *Room) Leave(playerID string) error {
	if r.phase != RoomLobby {
		return fmt.Errorf("cannot leave while %s", r.phase)
	}
	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("player %s not seated", playerID)
	}
	delete(r.players, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Empty reports whether no players remain seated.
func (r *Room) Empty() bool { return len(r.players) == 0 }

// SetReady marks a seated player ready in the lobby. Once every seated
// player (minimum two) is ready, the first hand begins.
func (r *Room) SetReady(playerID string) error {
	if r.phase != RoomLobby {
		return fmt.Errorf("cannot ready up while %s", r.phase)
	}
	p, ok := r.players[playerID]
	if !ok {
		return fmt.Errorf("player %s not seated", playerID)
	}
	p.Ready = true

	if len(r.order) >= 2 && r.allReady() {
		r.startHand()
	}
	return nil
}

// MixedMode reports whether the current hand has both a fantasyland player
// and a normal player, which makes round progression asymmetric.
func (r *Room) MixedMode() bool {
	var fantasy, normal bool
	for _, p := range r.players {
		if p.InFantasyland {
			fantasy = true
		} else {
			normal = true
		}
	}
	return fantasy && normal
}

// TimeRemaining returns what is left on a player's turn countdown.
func (r *Room) TimeRemaining(playerID string) (remaining int64, active bool) {
	p, ok := r.players[playerID]
	if !ok || !p.Timer.Active() {
		return 0, false
	}
	return p.Timer.Remaining(r.clock.Now()).Milliseconds(), true
}

// startHand transitions to playing: fresh seed, shuffle, reserve the hand
// slice, reset per-hand player state and deal the initial tranches.
func (r *Room) startHand() {
	r.phase = RoomPlaying
	r.handNumber++
	r.handSeed = r.seedFn(r.id, r.handNumber)
	r.handCards = deck.Shuffle(deck.New(), r.handSeed)[:HandCardCount]
	r.revealTimer = nil

	for _, id := range r.order {
		r.players[id].ResetForHand()
	}

	r.logger.Info("hand started", "hand", r.handNumber, "mixed", r.MixedMode())
	r.publish(RoundStartedEvent{RoomID: r.id, HandNumber: r.handNumber, Seed: r.handSeed, timestamp: r.now()})

	for _, id := range r.order {
		p := r.players[id]
		if p.InFantasyland {
			p.FantasylandDealt = true
			r.dealTo(p, FantasylandDeal, PhaseFantasyland)
		} else {
			r.dealTo(p, InitialDeal, PhaseInitialSet)
		}
	}
	r.publishRoomState()
}

// dealTo hands the player their next n cards from the hand slice and starts
// their turn timer.
func (r *Room) dealTo(p *PlayerState, n int, phase PhaseType) {
	cards := r.handCards[p.CardsDealt : p.CardsDealt+n]
	p.deal(cards)

	p.Timer = NewTimer(p.ID, phase, r.now(), r.rules.TurnTimeout(phase))

	r.publish(CardsDealtEvent{
		PlayerID:  p.ID,
		Cards:     append([]deck.Card(nil), cards...),
		Phase:     phase,
		Round:     p.CurrentRound(),
		timestamp: r.now(),
	})
	r.publish(TimerStartedEvent{
		PlayerID:  p.ID,
		Phase:     phase,
		Deadline:  p.Timer.Deadline(),
		Duration:  p.Timer.Duration,
		timestamp: r.now(),
	})
}

// SubmitTurn validates and applies a player's turn, stops their timer, and
// advances the room. A rejected turn mutates nothing.
func (r *Room) SubmitTurn(playerID string, placements []Placement, discard *deck.Card) error {
	if r.phase != RoomPlaying {
		return fmt.Errorf("room is %s, not accepting turns", r.phase)
	}
	p, ok := r.players[playerID]
	if !ok {
		return fmt.Errorf("player %s not seated", playerID)
	}

	if err := p.ApplyTurn(placements, discard); err != nil {
		return err
	}
	p.Timer.Stop()

	r.publish(TurnAppliedEvent{
		PlayerID:   playerID,
		Placements: placements,
		Discard:    discard,
		timestamp:  r.now(),
	})

	r.advance()
	return nil
}

// CheckTimers is the external scheduler's periodic tick. Every expired turn
// timer resolves through auto-placement exactly once, and an elapsed reveal
// countdown rolls the room into the next hand. It returns the ids of
// players whose turns were auto-committed.
func (r *Room) CheckTimers() []string {
	now := r.clock.Now()

	switch r.phase {
	case RoomReveal:
		if r.revealTimer.Expired(now) {
			r.revealTimer.Stop()
			r.startHand()
		}
		return nil

	case RoomPlaying:
		var expired []string
		for _, id := range r.order {
			p := r.players[id]
			if !p.Timer.Expired(now) {
				continue
			}
			p.Timer.Stop()
			r.publish(TimerExpiredEvent{PlayerID: id, Phase: p.Phase(), timestamp: now})

			auto := AutoPlace(p)
			if err := p.ApplyTurn(auto.Placements, auto.Discard); err != nil {
				// Auto-placement output always satisfies the turn contract;
				// reaching here means the engine state is corrupt.
				r.logger.Error("auto-placement rejected", "player", id, "error", err)
				continue
			}
			expired = append(expired, id)

			r.publish(TurnAppliedEvent{
				PlayerID:      id,
				Placements:    auto.Placements,
				Discard:       auto.Discard,
				AutoCommitted: true,
				timestamp:     now,
			})
		}
		if len(expired) > 0 {
			r.advance()
		}
		return expired

	default:
		return nil
	}
}

// advance decides what happens after a turn lands: reveal when everyone is
// done, otherwise deal the next tranches respecting the mode's barriers.
//
// Uniform mode is a strict barrier: nobody receives the next tranche until
// every player has submitted. Mixed mode lets normal players run their own
// rounds independently of the fantasyland player's single decision, except
// that the final tranche is held back until the fantasyland player is ready.
func (r *Room) advance() {
	if r.phase != RoomPlaying {
		return
	}

	if r.allHandsComplete() {
		r.enterReveal()
		return
	}

	if r.MixedMode() {
		flReady := r.fantasylandReady()
		for _, id := range r.order {
			p := r.players[id]
			if p.InFantasyland || !p.Ready || p.AllCardsDealt() {
				continue
			}
			if p.CardsDealt == NormalHandTotal-RoundDeal && !flReady {
				continue
			}
			p.Ready = false
			r.dealTo(p, RoundDeal, PhaseRound)
		}
		return
	}

	if !r.allReady() {
		return
	}
	for _, id := range r.order {
		p := r.players[id]
		if p.AllCardsDealt() {
			continue
		}
		p.Ready = false
		r.dealTo(p, RoundDeal, PhaseRound)
	}
}

func (r *Room) allReady() bool {
	for _, p := range r.players {
		if !p.Ready {
			return false
		}
	}
	return true
}

func (r *Room) allHandsComplete() bool {
	for _, p := range r.players {
		if !p.HandComplete() {
			return false
		}
	}
	return true
}

func (r *Room) fantasylandReady() bool {
	for _, p := range r.players {
		if p.InFantasyland && !p.Ready {
			return false
		}
	}
	return true
}

// enterReveal settles every unordered pair of boards, applies chip
// transfers, re-evaluates fantasyland for the next hand, emits stat deltas,
// and either terminates the match on a chip threshold or arms the reveal
// countdown for the next hand.
func (r *Room) enterReveal() {
	r.phase = RoomReveal

	netPoints := make(map[string]int, len(r.order))
	settlements := make([]PairSettlement, 0, len(r.order)*(len(r.order)-1)/2)

	for i := 0; i < len(r.order); i++ {
		for j := i + 1; j < len(r.order); j++ {
			a := r.players[r.order[i]]
			b := r.players[r.order[j]]

			res := SettlePairwise(a.Board, b.Board, r.rules)
			settlements = append(settlements, PairSettlement{PlayerA: a.ID, PlayerB: b.ID, Result: res})

			diff := res.A.Total - res.B.Total
			netPoints[a.ID] += diff
			netPoints[b.ID] -= diff

			transfer := TransferChips(a, b, diff, r.rules.PointsPerChip)
			if transfer.Amount > 0 {
				r.logger.Info("chips transferred",
					"winner", transfer.WinnerID, "loser", transfer.LoserID,
					"points", transfer.Points, "chips", transfer.Amount)
			}
		}
	}

	boards := make(map[string]*Board, len(r.order))
	flNext := make(map[string]bool, len(r.order))
	chips := make(map[string]int, len(r.order))
	stats := make([]HandStats, 0, len(r.order))

	for _, id := range r.order {
		p := r.players[id]
		boards[id] = p.Board.Clone()
		chips[id] = p.TableChips

		validation := ValidateBoard(p.Board)

		wasFantasyland := p.InFantasyland
		if wasFantasyland {
			p.InFantasyland = ContinuesFantasyland(p.Board)
		} else {
			p.InFantasyland = QualifiesForFantasyland(p.Board)
		}
		flNext[id] = p.InFantasyland

		royalties := 0
		if !validation.Fouled {
			royalties = r.rules.Royalties.Board(p.Board)
		}
		won := 0
		if netPoints[id] > 0 {
			won = 1
		}
		stats = append(stats, HandStats{
			PlayerID:           id,
			HandsPlayed:        1,
			HandsWon:           won,
			RoyaltiesEarned:    royalties,
			Fouled:             validation.Fouled,
			EnteredFantasyland: !wasFantasyland && p.InFantasyland,
		})
	}

	r.stats.RecordHandStats(r.id, r.handNumber, stats)
	r.publish(RevealEvent{
		RoomID:          r.id,
		HandNumber:      r.handNumber,
		Boards:          boards,
		Settlements:     settlements,
		FantasylandNext: flNext,
		Chips:           chips,
		timestamp:       r.now(),
	})

	if r.checkTerminal() {
		return
	}

	r.revealTimer = NewTimer("", PhaseRound, r.now(), r.rules.RevealTimeout)
	r.publishRoomState()
}

// checkTerminal ends the match when any balance hits a threshold.
func (r *Room) checkTerminal() bool {
	hit := false
	for _, p := range r.players {
		if AtThreshold(p.TableChips, r.rules.WinThreshold) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	r.phase = RoomEnded
	chips := make(map[string]int, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		chips[id] = p.TableChips
		if r.winnerID == "" || p.TableChips > r.players[r.winnerID].TableChips {
			r.winnerID = id
		}
		if r.loserID == "" || p.TableChips < r.players[r.loserID].TableChips {
			r.loserID = id
		}
	}

	r.logger.Info("game ended", "winner", r.winnerID, "loser", r.loserID)
	r.publish(GameEndedEvent{
		RoomID:     r.id,
		WinnerID:   r.winnerID,
		LoserID:    r.loserID,
		FinalChips: chips,
		timestamp:  r.now(),
	})
	r.publishRoomState()
	return true
}

func (r *Room) publishRoomState() {
	summaries := make([]PlayerSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		summaries = append(summaries, PlayerSummary{
			PlayerID:      id,
			Round:         p.CurrentRound(),
			Ready:         p.Ready,
			InFantasyland: p.InFantasyland,
			TableChips:    p.TableChips,
			BoardCards:    p.Board.CardCount(),
		})
	}
	r.publish(RoomStateEvent{
		RoomID:     r.id,
		Phase:      r.phase,
		HandNumber: r.handNumber,
		Players:    summaries,
		timestamp:  r.now(),
	})
}

func (r *Room) publish(e Event) {
	r.bus.Publish(e)
}

func (r *Room) now() time.Time {
	return r.clock.Now()
}
