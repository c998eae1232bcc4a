package game

import "github.com/lttcmd/pineapple-app-sub000/internal/deck"

// AutoPlacement is the deterministic fallback turn computed when a player's
// timer expires.
type AutoPlacement struct {
	Placements []Placement
	Discard    *deck.Card
}

// AutoPlace computes the timeout turn for a player: scan board slots in
// fixed order (top then middle then bottom, left to right) and fill the
// first open slots with held cards in hand order. The number placed and the
// discard follow the phase exactly: the initial set places 5 with no
// discard, a normal round places 2 and discards the third card, fantasyland
// places 13 and discards the fourteenth. No randomness is involved, so the
// same state always resolves the same way.
func AutoPlace(p *PlayerState) AutoPlacement {
	toPlace := p.TurnCap()
	if toPlace > len(p.Hand) {
		toPlace = len(p.Hand)
	}

	out := AutoPlacement{Placements: make([]Placement, 0, toPlace)}
	next := 0

	for _, row := range []Row{RowTop, RowMiddle, RowBottom} {
		free := p.Board.FreeSlots(row)
		for free > 0 && next < toPlace {
			out.Placements = append(out.Placements, Placement{Row: row, Card: p.Hand[next]})
			next++
			free--
		}
	}

	// Whatever the phase did not place is the discard. If the board ran out
	// of open slots early, the leftover card is a forced discard rather than
	// being dropped.
	if p.discardsThisTurn() > 0 || next < toPlace {
		if next < len(p.Hand) {
			discard := p.Hand[next]
			out.Discard = &discard
		}
	}

	return out
}
