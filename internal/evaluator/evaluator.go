// Package evaluator ranks OFC rows: 5-card hands on the full poker scale and
// 3-card top rows on their own high-card/pair/trips scale. The two scales are
// not directly comparable; cross-scale foul reasoning lives in the game
// package, not here.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// Category is the 5-card hand category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the evaluation of a concrete 5-card hand: a category plus a
// tiebreak key ordered by descending significance.
type HandRank struct {
	Category  Category
	Tiebreaks []deck.Rank
}

// String returns the category name.
func (h HandRank) String() string {
	return h.Category.String()
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger.
// Categories compare first, then tiebreak keys element-wise; a missing
// element is treated as lower than any real rank.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	return compareKeys(h.Tiebreaks, other.Tiebreaks)
}

func compareKeys(a, b []deck.Rank) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av, bv := deck.Rank(-1), deck.Rank(-1)
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Rank5 evaluates exactly five cards. Calling it with any other count is a
// contract violation and returns an error.
func Rank5(cards []deck.Card) (HandRank, error) {
	if len(cards) != 5 {
		return HandRank{}, fmt.Errorf("rank5: expected 5 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("rank5: invalid card %v", c)
		}
	}

	ranks := make([]deck.Rank, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straight, straightHigh := straightHighCard(ranks)

	if straight && flush {
		if straightHigh == deck.Ace {
			return HandRank{Category: RoyalFlush, Tiebreaks: []deck.Rank{deck.Ace}}, nil
		}
		return HandRank{Category: StraightFlush, Tiebreaks: []deck.Rank{straightHigh}}, nil
	}

	groups := groupByCount(ranks)

	switch {
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, Tiebreaks: []deck.Rank{groups[0].rank, groups[1].rank}}, nil
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, Tiebreaks: []deck.Rank{groups[0].rank, groups[1].rank}}, nil
	case flush:
		return HandRank{Category: Flush, Tiebreaks: ranks}, nil
	case straight:
		return HandRank{Category: Straight, Tiebreaks: []deck.Rank{straightHigh}}, nil
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, Tiebreaks: []deck.Rank{groups[0].rank, groups[1].rank, groups[2].rank}}, nil
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, Tiebreaks: []deck.Rank{groups[0].rank, groups[1].rank, groups[2].rank}}, nil
	case groups[0].count == 2:
		return HandRank{Category: Pair, Tiebreaks: []deck.Rank{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}}, nil
	default:
		return HandRank{Category: HighCard, Tiebreaks: ranks}, nil
	}
}

// straightHighCard reports whether the descending-sorted ranks form a
// straight and, if so, its high card. The wheel A-5-4-3-2 counts as a
// 5-high straight.
func straightHighCard(sorted []deck.Rank) (bool, deck.Rank) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return false, 0
		}
	}

	run := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1]-sorted[i] != 1 {
			run = false
			break
		}
	}
	if run {
		return true, sorted[0]
	}

	if sorted[0] == deck.Ace && sorted[1] == deck.Five && sorted[2] == deck.Four &&
		sorted[3] == deck.Three && sorted[4] == deck.Two {
		return true, deck.Five
	}
	return false, 0
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

// groupByCount buckets ranks by multiplicity, ordered by count descending
// then rank descending. This ordering is what makes the tiebreak keys fall
// out directly (quad rank before kicker, high pair before low pair, etc).
func groupByCount(ranks []deck.Rank) []rankGroup {
	counts := make(map[deck.Rank]int)
	for _, r := range ranks {
		counts[r]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, rankGroup{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}
