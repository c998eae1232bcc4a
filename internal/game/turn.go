package game

import (
	"errors"
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// Sentinel errors for turn intake. These surface to the submitting player
// only; a rejected turn never mutates any state.
var (
	ErrAlreadyReady       = errors.New("turn already submitted this round")
	ErrCardNotInHand      = errors.New("placement references a card not in hand")
	ErrWrongTurnSize      = errors.New("placement count does not match the turn cap")
	ErrDiscardNotAllowed  = errors.New("this phase does not discard")
	ErrDiscardRequired    = errors.New("this phase requires a discard")
	ErrRowOverflow        = errors.New("placement exceeds row capacity")
	ErrDuplicatePlacement = errors.New("card used more than once in turn")
)

// Placement assigns one held card to a row.
type Placement struct {
	Row  Row
	Card deck.Card
}

// ApplyTurn validates and applies a submitted turn atomically: either every
// placement and the discard land and the player is marked ready, or nothing
// changes. Validation covers the phase's turn cap, hand membership, discard
// rules and row capacity.
func (p *PlayerState) ApplyTurn(placements []Placement, discard *deck.Card) error {
	if p.Ready {
		return ErrAlreadyReady
	}
	if len(placements) != p.TurnCap() {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongTurnSize, len(placements), p.TurnCap())
	}

	switch p.discardsThisTurn() {
	case 0:
		if discard != nil {
			return ErrDiscardNotAllowed
		}
	default:
		if discard == nil {
			return ErrDiscardRequired
		}
	}

	used := make(map[deck.Card]bool, len(placements)+1)
	slots := [3]int{}
	for _, pl := range placements {
		if pl.Row < RowTop || pl.Row > RowBottom {
			return fmt.Errorf("unknown row %d", pl.Row)
		}
		if used[pl.Card] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlacement, pl.Card)
		}
		used[pl.Card] = true
		if !p.holdsCard(pl.Card) {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, pl.Card)
		}
		slots[pl.Row]++
	}
	if discard != nil {
		if used[*discard] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlacement, *discard)
		}
		if !p.holdsCard(*discard) {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, *discard)
		}
	}

	for _, row := range []Row{RowTop, RowMiddle, RowBottom} {
		if slots[row] > p.Board.FreeSlots(row) {
			return fmt.Errorf("%w: %d into %s with %d free", ErrRowOverflow, slots[row], row, p.Board.FreeSlots(row))
		}
	}

	// Validated; commit.
	for _, pl := range placements {
		_ = p.Board.Place(pl.Row, pl.Card)
		p.removeFromHand(pl.Card)
	}
	if discard != nil {
		p.Discards = append(p.Discards, *discard)
		p.removeFromHand(*discard)
	}
	p.Ready = true
	return nil
}
