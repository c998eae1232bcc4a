package game

import (
	"testing"
)

func TestRoyaltyFiveCardRows(t *testing.T) {
	t.Parallel()
	table := DefaultRoyaltyTable()

	tests := []struct {
		name  string
		cards string
		row   Row
		want  int
	}{
		{"bottom straight", "5c 6d 7h 8s 9c", RowBottom, 2},
		{"bottom flush", "Kc Qc 9c 5c 3c", RowBottom, 4},
		{"bottom full house", "8s 8h 8d Kd Ks", RowBottom, 6},
		{"bottom quads", "6c 6d 6h 6s Qd", RowBottom, 10},
		{"bottom steel wheel pays straight flush not royal", "Ad 2d 3d 4d 5d", RowBottom, 15},
		{"bottom royal flush", "Ac Kc Qc Jc Tc", RowBottom, 25},
		{"bottom trips pay nothing", "7c 7d 7h 2s 3s", RowBottom, 0},
		{"bottom two pair pays nothing", "Kc Kd Qc Qd 3h", RowBottom, 0},
		{"middle trips", "7c 7d 7h 2s 3s", RowMiddle, 2},
		{"middle straight", "5c 6d 7h 8s 9c", RowMiddle, 4},
		{"middle flush", "Kc Qc 9c 5c 3c", RowMiddle, 8},
		{"middle full house", "8s 8h 8d Kd Ks", RowMiddle, 12},
		{"middle quads", "6c 6d 6h 6s Qd", RowMiddle, 20},
		{"middle straight flush", "9h 8h 7h 6h 5h", RowMiddle, 30},
		{"middle royal flush", "Ah Kh Qh Jh Th", RowMiddle, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := table.Five(cards(t, tt.cards), tt.row)
			if err != nil {
				t.Fatalf("Five: %v", err)
			}
			if got != tt.want {
				t.Errorf("Five(%s, %s) = %d, want %d", tt.cards, tt.row, got, tt.want)
			}
		})
	}

	t.Run("top is not a 5-card row", func(t *testing.T) {
		t.Parallel()
		if _, err := table.Five(cards(t, "5c 6d 7h 8s 9c"), RowTop); err == nil {
			t.Error("expected error for top row")
		}
	})
}

func TestRoyaltyTopRow(t *testing.T) {
	t.Parallel()
	table := DefaultRoyaltyTable()

	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"pair of fives pays nothing", "5c 5d Ah", 0},
		{"pair of sixes", "6c 6d Ah", 1},
		{"pair of queens", "Qc Qd 5s", 7},
		{"pair of aces", "Ac Ad 2s", 9},
		{"trip deuces", "2c 2d 2h", 10},
		{"trip aces", "Ac Ad Ah", 22},
		{"high card pays nothing", "Ac Kd Qh", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := table.Top(cards(t, tt.cards))
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			if got != tt.want {
				t.Errorf("Top(%s) = %d, want %d", tt.cards, got, tt.want)
			}
		})
	}
}

func TestRoyaltyBoardSum(t *testing.T) {
	t.Parallel()
	table := DefaultRoyaltyTable()

	b := strongBoard(t) // middle trips 2, bottom full house 6
	if got := table.Board(b); got != 8 {
		t.Errorf("Board = %d, want 8", got)
	}

	if got := table.Board(weakBoard(t)); got != 0 {
		t.Errorf("Board on weak board = %d, want 0", got)
	}
}
