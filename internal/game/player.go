package game

import (
	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// PhaseType distinguishes the three kinds of placement decision a player can
// face. It is a closed enum: auto-placement and timer durations switch on it
// exhaustively so a new phase type cannot be silently mishandled.
type PhaseType int

const (
	PhaseInitialSet PhaseType = iota
	PhaseRound
	PhaseFantasyland
)

// String returns the phase name used in events.
func (p PhaseType) String() string {
	switch p {
	case PhaseInitialSet:
		return "initial-set"
	case PhaseRound:
		return "round"
	case PhaseFantasyland:
		return "fantasyland"
	default:
		return "unknown"
	}
}

// Dealing cadence constants. A normal player receives 5 cards up front and
// then four tranches of 3, placing 13 and discarding 4 of the 17 dealt.
// A fantasyland player receives all 14 at once and places 13.
const (
	InitialDeal     = 5
	RoundDeal       = 3
	FantasylandDeal = 14
	NormalHandTotal = 17
	FinalRound      = 5
)

// PlayerState is one player's per-hand progression. Board, hand, discards
// and cardsDealt reset every hand; InFantasyland and TableChips persist for
// the life of the match.
type PlayerState struct {
	ID       string
	Hand     []deck.Card
	Board    *Board
	Discards []deck.Card

	CardsDealt int
	Ready      bool

	InFantasyland    bool
	FantasylandDealt bool

	TableChips int

	Timer *Timer
}

// NewPlayerState seats a player with their starting chip balance.
func NewPlayerState(id string, startChips int) *PlayerState {
	return &PlayerState{
		ID:         id,
		Board:      NewBoard(),
		TableChips: startChips,
	}
}

// ResetForHand clears per-hand state. Fantasyland status and chips survive.
func (p *PlayerState) ResetForHand() {
	p.Hand = nil
	p.Board = NewBoard()
	p.Discards = nil
	p.CardsDealt = 0
	p.Ready = false
	p.FantasylandDealt = false
	p.Timer = nil
}

// Phase returns the kind of decision the player currently faces.
func (p *PlayerState) Phase() PhaseType {
	if p.InFantasyland {
		return PhaseFantasyland
	}
	if p.CardsDealt <= InitialDeal {
		return PhaseInitialSet
	}
	return PhaseRound
}

// CurrentRound derives the round number from cards dealt so far: 5 cards is
// round 1, each later tranche of 3 advances one round up to round 5. A
// fantasyland hand is a single round.
func (p *PlayerState) CurrentRound() int {
	if p.InFantasyland {
		return 1
	}
	if p.CardsDealt < InitialDeal {
		return 0
	}
	return (p.CardsDealt - 2) / RoundDeal
}

// TurnCap returns how many cards must be placed to complete the current
// turn: 5 in the initial set, 13 in fantasyland, 2 in every other round.
func (p *PlayerState) TurnCap() int {
	switch p.Phase() {
	case PhaseInitialSet:
		return InitialDeal
	case PhaseFantasyland:
		return 13
	default:
		return 2
	}
}

// discardsThisTurn returns how many cards the current phase discards.
func (p *PlayerState) discardsThisTurn() int {
	if p.Phase() == PhaseInitialSet {
		return 0
	}
	return 1
}

// AllCardsDealt reports whether the player has received their full
// allotment for this hand.
func (p *PlayerState) AllCardsDealt() bool {
	if p.InFantasyland {
		return p.FantasylandDealt
	}
	return p.CardsDealt >= NormalHandTotal
}

// HandComplete reports whether the player is finished for this hand: full
// allotment dealt, board complete and the final turn submitted.
func (p *PlayerState) HandComplete() bool {
	return p.AllCardsDealt() && p.Board.Complete() && p.Ready
}

// holdsCard reports whether the card is currently in the player's hand.
func (p *PlayerState) holdsCard(c deck.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// removeFromHand removes one instance of the card from the hand.
func (p *PlayerState) removeFromHand(c deck.Card) {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// deal appends cards to the player's hand and bumps the dealt counter. The
// caller guarantees the cards have not been dealt to this player before.
func (p *PlayerState) deal(cards []deck.Card) {
	p.Hand = append(p.Hand, cards...)
	p.CardsDealt += len(cards)
}
