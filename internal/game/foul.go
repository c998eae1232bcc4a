package game

import (
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/evaluator"
)

// Validation is the outcome of checking a board for a foul. It fails closed:
// any malformed board comes back fouled with a reason rather than an error,
// so settlement always has a defined result.
type Validation struct {
	Fouled bool
	Reason string
}

func fouled(format string, args ...any) Validation {
	return Validation{Fouled: true, Reason: fmt.Sprintf(format, args...)}
}

// ValidateBoard checks the required strength ordering bottom >= middle >= top.
// Bottom and middle compare on the uniform 5-card scale; middle vs top needs
// the cross-scale rules below because the top row uses the 3-card scale.
func ValidateBoard(b *Board) Validation {
	if b == nil {
		return fouled("missing board")
	}
	if len(b.Top) != RowTop.Capacity() || len(b.Middle) != RowMiddle.Capacity() || len(b.Bottom) != RowBottom.Capacity() {
		return fouled("incomplete board: top=%d middle=%d bottom=%d", len(b.Top), len(b.Middle), len(b.Bottom))
	}
	if dup, ok := firstDuplicate(b.Cards()); ok {
		return fouled("duplicate card %s on board", dup)
	}

	bottom, err := evaluator.Rank5(b.Bottom)
	if err != nil {
		return fouled("bottom row: %v", err)
	}
	middle, err := evaluator.Rank5(b.Middle)
	if err != nil {
		return fouled("middle row: %v", err)
	}
	top, err := evaluator.RankTop3(b.Top)
	if err != nil {
		return fouled("top row: %v", err)
	}

	if bottom.Compare(middle) < 0 {
		return fouled("bottom (%s) weaker than middle (%s)", bottom, middle)
	}

	return validateMiddleVsTop(middle, top)
}

// validateMiddleVsTop applies the cross-scale rules. A middle of full house
// or better, or any straight or flush, dominates every possible top row.
// The middle-two-pair case only fouls against top trips; a top pair never
// fouls a two-pair middle. That asymmetry matches the intended rule set and
// must not be "corrected" to the canonical OFC ordering.
func validateMiddleVsTop(middle evaluator.HandRank, top evaluator.TopRank) Validation {
	switch middle.Category {
	case evaluator.FullHouse, evaluator.FourOfAKind, evaluator.StraightFlush, evaluator.RoyalFlush:
		return Validation{}
	case evaluator.Straight, evaluator.Flush:
		return Validation{}

	case evaluator.ThreeOfAKind:
		if top.Category == evaluator.TopTrips && top.Tiebreaks[0] > middle.Tiebreaks[0] {
			return fouled("top trips %s over middle trips %s", top.Tiebreaks[0], middle.Tiebreaks[0])
		}
		return Validation{}

	case evaluator.TwoPair:
		if top.Category == evaluator.TopTrips {
			return fouled("top trips over middle two pair")
		}
		return Validation{}

	case evaluator.Pair:
		if top.Category == evaluator.TopTrips {
			return fouled("top trips over middle pair")
		}
		if top.Category == evaluator.TopPair && top.Tiebreaks[0] > middle.Tiebreaks[0] {
			return fouled("top pair %s over middle pair %s", top.Tiebreaks[0], middle.Tiebreaks[0])
		}
		return Validation{}

	default: // middle is high card
		if top.Category == evaluator.TopTrips || top.Category == evaluator.TopPair {
			return fouled("top %s over middle high card", top)
		}
		if topHigh, midHigh := top.Tiebreaks[0], middle.Tiebreaks[0]; topHigh > midHigh {
			return fouled("top high card %s over middle high card %s", topHigh, midHigh)
		}
		return Validation{}
	}
}
