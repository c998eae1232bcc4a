// Package game implements the OFC Pineapple engine: boards, foul detection,
// royalties, pairwise settlement, fantasyland rules, and the per-room state
// machine that drives dealing, turns, timers and chip movement.
package game

import (
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// Row identifies one of the three lines on a board.
type Row int

const (
	RowTop Row = iota
	RowMiddle
	RowBottom
)

// String returns the row name used in events and placements.
func (r Row) String() string {
	switch r {
	case RowTop:
		return "top"
	case RowMiddle:
		return "middle"
	case RowBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Capacity returns how many cards the row holds when full.
func (r Row) Capacity() int {
	if r == RowTop {
		return 3
	}
	return 5
}

// ParseRow parses a row name.
func ParseRow(s string) (Row, error) {
	switch s {
	case "top":
		return RowTop, nil
	case "middle":
		return RowMiddle, nil
	case "bottom":
		return RowBottom, nil
	default:
		return 0, fmt.Errorf("unknown row %q", s)
	}
}

// Board holds one player's three rows. A board is complete when the top has
// 3 cards and the middle and bottom have 5 each; only complete boards are
// eligible for validation and settlement.
type Board struct {
	Top    []deck.Card
	Middle []deck.Card
	Bottom []deck.Card
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		Top:    make([]deck.Card, 0, RowTop.Capacity()),
		Middle: make([]deck.Card, 0, RowMiddle.Capacity()),
		Bottom: make([]deck.Card, 0, RowBottom.Capacity()),
	}
}

// RowCards returns the cards in the given row.
func (b *Board) RowCards(r Row) []deck.Card {
	switch r {
	case RowTop:
		return b.Top
	case RowMiddle:
		return b.Middle
	default:
		return b.Bottom
	}
}

// Place appends a card to a row, enforcing the row's capacity.
func (b *Board) Place(r Row, c deck.Card) error {
	cards := b.RowCards(r)
	if len(cards) >= r.Capacity() {
		return fmt.Errorf("%s row is full", r)
	}
	switch r {
	case RowTop:
		b.Top = append(b.Top, c)
	case RowMiddle:
		b.Middle = append(b.Middle, c)
	default:
		b.Bottom = append(b.Bottom, c)
	}
	return nil
}

// FreeSlots returns the number of open slots in a row.
func (b *Board) FreeSlots(r Row) int {
	return r.Capacity() - len(b.RowCards(r))
}

// CardCount returns the total number of cards placed on the board.
func (b *Board) CardCount() int {
	return len(b.Top) + len(b.Middle) + len(b.Bottom)
}

// Complete reports whether all thirteen slots are filled.
func (b *Board) Complete() bool {
	return len(b.Top) == RowTop.Capacity() &&
		len(b.Middle) == RowMiddle.Capacity() &&
		len(b.Bottom) == RowBottom.Capacity()
}

// Cards returns every card on the board, top row first.
func (b *Board) Cards() []deck.Card {
	out := make([]deck.Card, 0, b.CardCount())
	out = append(out, b.Top...)
	out = append(out, b.Middle...)
	out = append(out, b.Bottom...)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard()
	out.Top = append(out.Top, b.Top...)
	out.Middle = append(out.Middle, b.Middle...)
	out.Bottom = append(out.Bottom, b.Bottom...)
	return out
}

// String renders the board as three labelled rows.
func (b *Board) String() string {
	return fmt.Sprintf("top[%s] middle[%s] bottom[%s]",
		deck.FormatCards(b.Top), deck.FormatCards(b.Middle), deck.FormatCards(b.Bottom))
}

// firstDuplicate returns the first card that appears twice, if any.
func firstDuplicate(cards []deck.Card) (deck.Card, bool) {
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return deck.Card{}, false
}
