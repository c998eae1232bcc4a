package game

import (
	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/evaluator"
)

// QualifiesForFantasyland reports whether a completed board earns its owner
// entry into fantasyland on the next hand: a top pair of queens or better on
// a board that does not foul.
func QualifiesForFantasyland(b *Board) bool {
	if ValidateBoard(b).Fouled {
		return false
	}
	top, err := evaluator.RankTop3(b.Top)
	if err != nil {
		return false
	}
	return top.Category == evaluator.TopPair && top.Tiebreaks[0] >= deck.Queen
}

// ContinuesFantasyland reports whether a player already in fantasyland stays
// there for the next hand: top trips of any rank, or a bottom of quads or
// better, on a board that does not foul.
func ContinuesFantasyland(b *Board) bool {
	if ValidateBoard(b).Fouled {
		return false
	}

	top, err := evaluator.RankTop3(b.Top)
	if err == nil && top.Category == evaluator.TopTrips {
		return true
	}

	bottom, err := evaluator.Rank5(b.Bottom)
	if err == nil && bottom.Category >= evaluator.FourOfAKind {
		return true
	}
	return false
}
