package game

import (
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/evaluator"
)

// RowPayouts maps 5-card hand shapes to bonus points for one row. Categories
// not listed (high card, pair, two pair) pay nothing.
type RowPayouts struct {
	Trips         int
	Straight      int
	Flush         int
	FullHouse     int
	Quads         int
	StraightFlush int
	RoyalFlush    int
}

// RoyaltyTable is the full payout configuration. Top-row payouts are keyed
// by the specific pair or trip rank.
type RoyaltyTable struct {
	Bottom   RowPayouts
	Middle   RowPayouts
	TopPair  map[deck.Rank]int
	TopTrips map[deck.Rank]int
}

// DefaultRoyaltyTable returns the standard OFC Pineapple payouts: middle
// pays double bottom, top pairs pay from sixes up, top trips from 10 for
// deuces up to 22 for aces.
func DefaultRoyaltyTable() RoyaltyTable {
	table := RoyaltyTable{
		Bottom: RowPayouts{
			Straight:      2,
			Flush:         4,
			FullHouse:     6,
			Quads:         10,
			StraightFlush: 15,
			RoyalFlush:    25,
		},
		Middle: RowPayouts{
			Trips:         2,
			Straight:      4,
			Flush:         8,
			FullHouse:     12,
			Quads:         20,
			StraightFlush: 30,
			RoyalFlush:    50,
		},
		TopPair:  make(map[deck.Rank]int, 9),
		TopTrips: make(map[deck.Rank]int, 13),
	}
	for r := deck.Six; r <= deck.Ace; r++ {
		table.TopPair[r] = int(r) - int(deck.Five)
	}
	for r := deck.Two; r <= deck.Ace; r++ {
		table.TopTrips[r] = int(r) + 8
	}
	return table
}

// Five returns the royalty for a 5-card row. The royal flush payout applies
// only to the A-K-Q-J-T straight flush; every other straight flush pays the
// plain straight-flush rate.
func (t RoyaltyTable) Five(cards []deck.Card, row Row) (int, error) {
	if row != RowMiddle && row != RowBottom {
		return 0, fmt.Errorf("royalties: %s is not a 5-card row", row)
	}
	hr, err := evaluator.Rank5(cards)
	if err != nil {
		return 0, err
	}

	payouts := t.Bottom
	if row == RowMiddle {
		payouts = t.Middle
	}

	switch hr.Category {
	case evaluator.ThreeOfAKind:
		return payouts.Trips, nil
	case evaluator.Straight:
		return payouts.Straight, nil
	case evaluator.Flush:
		return payouts.Flush, nil
	case evaluator.FullHouse:
		return payouts.FullHouse, nil
	case evaluator.FourOfAKind:
		return payouts.Quads, nil
	case evaluator.StraightFlush:
		return payouts.StraightFlush, nil
	case evaluator.RoyalFlush:
		return payouts.RoyalFlush, nil
	default:
		return 0, nil
	}
}

// Top returns the royalty for a 3-card top row.
func (t RoyaltyTable) Top(cards []deck.Card) (int, error) {
	tr, err := evaluator.RankTop3(cards)
	if err != nil {
		return 0, err
	}

	switch tr.Category {
	case evaluator.TopPair:
		return t.TopPair[tr.Tiebreaks[0]], nil
	case evaluator.TopTrips:
		return t.TopTrips[tr.Tiebreaks[0]], nil
	default:
		return 0, nil
	}
}

// Board sums the royalties across all three rows of a complete board.
// Incomplete or malformed rows contribute nothing.
func (t RoyaltyTable) Board(b *Board) int {
	total := 0
	if v, err := t.Top(b.Top); err == nil {
		total += v
	}
	if v, err := t.Five(b.Middle, RowMiddle); err == nil {
		total += v
	}
	if v, err := t.Five(b.Bottom, RowBottom); err == nil {
		total += v
	}
	return total
}
