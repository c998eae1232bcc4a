package evaluator

import (
	"testing"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

func cards(t *testing.T, codes ...string) []deck.Card {
	t.Helper()
	out, err := deck.ParseCards(codes...)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return out
}

func rank5(t *testing.T, codes ...string) HandRank {
	t.Helper()
	hr, err := Rank5(cards(t, codes...))
	if err != nil {
		t.Fatalf("Rank5(%v): %v", codes, err)
	}
	return hr
}

func TestRank5Categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		want  Category
	}{
		{"high card", []string{"As", "Kd", "9h", "5c", "2s"}, HighCard},
		{"pair", []string{"As", "Ad", "9h", "5c", "2s"}, Pair},
		{"two pair", []string{"As", "Ad", "9h", "9c", "2s"}, TwoPair},
		{"trips", []string{"As", "Ad", "Ah", "9c", "2s"}, ThreeOfAKind},
		{"straight", []string{"9s", "8d", "7h", "6c", "5s"}, Straight},
		{"wheel straight", []string{"As", "2d", "3h", "4c", "5s"}, Straight},
		{"broadway straight", []string{"As", "Kd", "Qh", "Jc", "Ts"}, Straight},
		{"flush", []string{"As", "Ks", "9s", "5s", "2s"}, Flush},
		{"full house", []string{"As", "Ad", "Ah", "9c", "9s"}, FullHouse},
		{"quads", []string{"As", "Ad", "Ah", "Ac", "9s"}, FourOfAKind},
		{"straight flush", []string{"9s", "8s", "7s", "6s", "5s"}, StraightFlush},
		{"steel wheel", []string{"As", "2s", "3s", "4s", "5s"}, StraightFlush},
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "Ts"}, RoyalFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rank5(t, tt.cards...)
			if got.Category != tt.want {
				t.Errorf("got %v, want %v", got.Category, tt.want)
			}
		})
	}
}

func TestRank5StrengthOrder(t *testing.T) {
	t.Parallel()

	// Ascending strength; every hand must beat all before it.
	ladder := []HandRank{
		rank5(t, "As", "Kd", "9h", "5c", "2s"),
		rank5(t, "2s", "2d", "9h", "5c", "3s"),
		rank5(t, "2s", "2d", "3h", "3c", "4s"),
		rank5(t, "2s", "2d", "2h", "5c", "4s"),
		rank5(t, "As", "2d", "3h", "4c", "5s"), // wheel
		rank5(t, "6s", "5d", "4h", "3c", "2s"), // 6-high straight beats wheel
		rank5(t, "As", "Kd", "Qh", "Jc", "Ts"),
		rank5(t, "7s", "5s", "4s", "3s", "2s"),
		rank5(t, "2s", "2d", "2h", "3c", "3s"),
		rank5(t, "2s", "2d", "2h", "2c", "3s"),
		rank5(t, "As", "2s", "3s", "4s", "5s"), // lowest straight flush
		rank5(t, "9s", "8s", "7s", "6s", "5s"),
		rank5(t, "Ks", "Qs", "Js", "Ts", "9s"),
		rank5(t, "As", "Ks", "Qs", "Js", "Ts"), // royal beats every straight flush
	}

	for i := range ladder {
		for j := range ladder {
			got := ladder[i].Compare(ladder[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("ladder[%d].Compare(ladder[%d]) = %d, want %d (%v vs %v)",
					i, j, got, want, ladder[i], ladder[j])
			}
		}
	}
}

func TestRank5Kickers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stronger []string
		weaker   []string
	}{
		{"pair rank", []string{"Ks", "Kd", "2h", "3c", "4s"}, []string{"Qs", "Qd", "Ah", "Jc", "Ts"}},
		{"pair kicker", []string{"Ks", "Kd", "Ah", "3c", "4s"}, []string{"Kh", "Kc", "Qh", "Jc", "4d"}},
		{"two pair high", []string{"As", "Ad", "2h", "2c", "3s"}, []string{"Ks", "Kd", "Qh", "Qc", "As"}},
		{"two pair low", []string{"As", "Ad", "5h", "5c", "2s"}, []string{"Ah", "Ac", "4h", "4c", "Ks"}},
		{"two pair kicker", []string{"As", "Ad", "5h", "5c", "9s"}, []string{"Ah", "Ac", "5d", "5s", "8s"}},
		{"quads kicker", []string{"As", "Ad", "Ah", "Ac", "Ks"}, []string{"9s", "9d", "9h", "9c", "As"}},
		{"full house trips", []string{"9s", "9d", "9h", "2c", "2s"}, []string{"8s", "8d", "8h", "Ac", "As"}},
		{"flush high", []string{"As", "9s", "8s", "7s", "2s"}, []string{"Kd", "Qd", "Jd", "9d", "8d"}},
		{"straight high", []string{"Ts", "9d", "8h", "7c", "6s"}, []string{"9s", "8d", "7h", "6c", "5s"}},
		{"high card run", []string{"As", "Kd", "9h", "5c", "2s"}, []string{"Ah", "Kc", "9d", "4c", "3s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := rank5(t, tt.stronger...)
			b := rank5(t, tt.weaker...)
			if a.Compare(b) != 1 {
				t.Errorf("%v should beat %v", tt.stronger, tt.weaker)
			}
			if b.Compare(a) != -1 {
				t.Errorf("compare not antisymmetric for %v vs %v", tt.stronger, tt.weaker)
			}
		})
	}
}

func TestRank5Ties(t *testing.T) {
	t.Parallel()

	a := rank5(t, "As", "Kd", "9h", "5c", "2s")
	b := rank5(t, "Ah", "Kc", "9d", "5s", "2h")
	if a.Compare(b) != 0 {
		t.Errorf("suit-only difference should tie, got %d", a.Compare(b))
	}
}

func TestRank5WrongSize(t *testing.T) {
	t.Parallel()

	if _, err := Rank5(cards(t, "As", "Kd")); err == nil {
		t.Error("expected error for 2 cards")
	}
	if _, err := Rank5(cards(t, "As", "Kd", "9h", "5c", "2s", "3d")); err == nil {
		t.Error("expected error for 6 cards")
	}
	if _, err := Rank5(nil); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestRankTop3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		want  TopCategory
	}{
		{"high card", []string{"As", "Kd", "9h"}, TopHighCard},
		{"pair", []string{"Qs", "Qd", "9h"}, TopPair},
		{"pair low ordered", []string{"9h", "Qs", "Qd"}, TopPair},
		{"trips", []string{"Qs", "Qd", "Qh"}, TopTrips},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RankTop3(cards(t, tt.cards...))
			if err != nil {
				t.Fatalf("RankTop3: %v", err)
			}
			if got.Category != tt.want {
				t.Errorf("got %v, want %v", got.Category, tt.want)
			}
		})
	}
}

func TestRankTop3Compare(t *testing.T) {
	t.Parallel()

	top := func(codes ...string) TopRank {
		tr, err := RankTop3(cards(t, codes...))
		if err != nil {
			t.Fatalf("RankTop3: %v", err)
		}
		return tr
	}

	ladder := []TopRank{
		top("2s", "3d", "4h"),
		top("As", "Kd", "Qh"),
		top("2s", "2d", "3h"),
		top("Qs", "Qd", "2h"),
		top("Qs", "Qd", "Ah"), // same pair, better kicker
		top("As", "Ad", "2h"),
		top("2s", "2d", "2h"),
		top("As", "Ad", "Ah"),
	}

	for i := 1; i < len(ladder); i++ {
		if ladder[i].Compare(ladder[i-1]) != 1 {
			t.Errorf("ladder[%d] (%v) should beat ladder[%d] (%v)", i, ladder[i], i-1, ladder[i-1])
		}
	}
}

func TestRankTop3WrongSize(t *testing.T) {
	t.Parallel()

	if _, err := RankTop3(cards(t, "As", "Kd", "9h", "5c")); err == nil {
		t.Error("expected error for 4 cards")
	}
	if _, err := RankTop3(nil); err == nil {
		t.Error("expected error for nil input")
	}
}
