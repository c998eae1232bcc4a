package game

import (
	"testing"
)

func TestPlayerPhaseAndRound(t *testing.T) {
	t.Parallel()

	p := NewPlayerState("p", 250)
	if p.Phase() != PhaseInitialSet || p.CurrentRound() != 0 {
		t.Errorf("fresh player: phase=%s round=%d", p.Phase(), p.CurrentRound())
	}

	steps := []struct {
		deal  int
		phase PhaseType
		round int
		cap   int
	}{
		{5, PhaseInitialSet, 1, 5},
		{3, PhaseRound, 2, 2},
		{3, PhaseRound, 3, 2},
		{3, PhaseRound, 4, 2},
		{3, PhaseRound, 5, 2},
	}

	dealt := 0
	for _, s := range steps {
		p.deal(freshCards(dealt, s.deal))
		dealt += s.deal
		if p.CardsDealt != dealt {
			t.Fatalf("CardsDealt = %d, want %d", p.CardsDealt, dealt)
		}
		if p.Phase() != s.phase {
			t.Errorf("after %d cards: phase = %s, want %s", dealt, p.Phase(), s.phase)
		}
		if p.CurrentRound() != s.round {
			t.Errorf("after %d cards: round = %d, want %d", dealt, p.CurrentRound(), s.round)
		}
		if p.TurnCap() != s.cap {
			t.Errorf("after %d cards: turn cap = %d, want %d", dealt, p.TurnCap(), s.cap)
		}
	}
	if !p.AllCardsDealt() {
		t.Error("17 cards dealt but AllCardsDealt is false")
	}
}

func TestPlayerFantasylandPhase(t *testing.T) {
	t.Parallel()

	p := NewPlayerState("p", 250)
	p.InFantasyland = true
	p.FantasylandDealt = true
	p.deal(freshCards(0, FantasylandDeal))

	if p.Phase() != PhaseFantasyland {
		t.Errorf("phase = %s, want fantasyland", p.Phase())
	}
	if p.TurnCap() != 13 {
		t.Errorf("turn cap = %d, want 13", p.TurnCap())
	}
	if p.CurrentRound() != 1 {
		t.Errorf("round = %d, want 1", p.CurrentRound())
	}
	if !p.AllCardsDealt() {
		t.Error("fantasyland deal complete but AllCardsDealt is false")
	}
}

func TestResetForHandKeepsMatchState(t *testing.T) {
	t.Parallel()

	p := NewPlayerState("p", 250)
	p.deal(freshCards(0, 5))
	p.Ready = true
	p.InFantasyland = true
	p.TableChips = 310
	p.Discards = cards(t, "2c")

	p.ResetForHand()

	if len(p.Hand) != 0 || p.CardsDealt != 0 || p.Ready || len(p.Discards) != 0 {
		t.Errorf("per-hand state not cleared: %+v", p)
	}
	if p.Board.CardCount() != 0 {
		t.Error("board not reset")
	}
	if !p.InFantasyland || p.TableChips != 310 {
		t.Error("fantasyland status and chips must survive the reset")
	}
}
