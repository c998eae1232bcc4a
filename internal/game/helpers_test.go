package game

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func cards(t *testing.T, codes string) []deck.Card {
	t.Helper()
	out, err := deck.ParseCards(strings.Fields(codes)...)
	if err != nil {
		t.Fatalf("parse cards %q: %v", codes, err)
	}
	return out
}

func card(t *testing.T, code string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(code)
	if err != nil {
		t.Fatalf("parse card %q: %v", code, err)
	}
	return c
}

func board(t *testing.T, top, middle, bottom string) *Board {
	t.Helper()
	b := NewBoard()
	for row, codes := range map[Row]string{
		RowTop:    top,
		RowMiddle: middle,
		RowBottom: bottom,
	} {
		for _, c := range cards(t, codes) {
			if err := b.Place(row, c); err != nil {
				t.Fatalf("place %s in %s: %v", c, row, err)
			}
		}
	}
	return b
}

// freshCards slices distinct cards out of an ordered deck, offset so
// consecutive tranches never repeat a card.
func freshCards(offset, n int) []deck.Card {
	return deck.New()[offset : offset+n]
}

// strongBoard never fouls and carries royalties on two rows: trip sevens in
// the middle (2) under eights full of kings on the bottom (6).
func strongBoard(t *testing.T) *Board {
	t.Helper()
	return board(t, "Qs Jh 9d", "7c 7d 7h 2s 3s", "8s 8h 8d Kd Ks")
}

// weakBoard never fouls and pays no royalties.
func weakBoard(t *testing.T) *Board {
	t.Helper()
	return board(t, "2c 3h 4d", "5c 5d 6h 9s Tc", "6s 6d 2h 4s Jc")
}

// fouledBoard has trip nines in the middle over a pair of fives.
func fouledBoard(t *testing.T) *Board {
	t.Helper()
	return board(t, "Kh Qd 2s", "9c 9d 9h 3s 4s", "5s 5h 7c 8c Jd")
}
