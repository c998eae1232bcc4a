package evaluator

import (
	"fmt"
	"sort"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

// TopCategory is the 3-card top-row scale. It is deliberately a distinct
// type from Category so the two scales cannot be compared by accident.
type TopCategory int

const (
	TopHighCard TopCategory = iota
	TopPair
	TopTrips
)

// String returns the readable category name.
func (c TopCategory) String() string {
	switch c {
	case TopHighCard:
		return "High Card"
	case TopPair:
		return "Pair"
	case TopTrips:
		return "Three of a Kind"
	default:
		return "Unknown"
	}
}

// TopRank is the evaluation of a 3-card top row.
type TopRank struct {
	Category  TopCategory
	Tiebreaks []deck.Rank
}

// String returns the category name.
func (h TopRank) String() string {
	return h.Category.String()
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger.
func (h TopRank) Compare(other TopRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	return compareKeys(h.Tiebreaks, other.Tiebreaks)
}

// RankTop3 evaluates exactly three cards on the top-row scale. Calling it
// with any other count is a contract violation and returns an error.
func RankTop3(cards []deck.Card) (TopRank, error) {
	if len(cards) != 3 {
		return TopRank{}, fmt.Errorf("rankTop3: expected 3 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if !c.Valid() {
			return TopRank{}, fmt.Errorf("rankTop3: invalid card %v", c)
		}
	}

	ranks := []deck.Rank{cards[0].Rank, cards[1].Rank, cards[2].Rank}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	switch {
	case ranks[0] == ranks[1] && ranks[1] == ranks[2]:
		return TopRank{Category: TopTrips, Tiebreaks: []deck.Rank{ranks[0]}}, nil
	case ranks[0] == ranks[1]:
		return TopRank{Category: TopPair, Tiebreaks: []deck.Rank{ranks[0], ranks[2]}}, nil
	case ranks[1] == ranks[2]:
		return TopRank{Category: TopPair, Tiebreaks: []deck.Rank{ranks[1], ranks[0]}}, nil
	default:
		return TopRank{Category: TopHighCard, Tiebreaks: ranks}, nil
	}
}
