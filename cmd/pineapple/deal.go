package main

import (
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// DealCmd replays the deterministic shuffle for a seed and prints the hand
// slice in dealing order: initial set, then the four pineapple tranches.
type DealCmd struct {
	Seed string `arg:"" help:"Seed string to shuffle with"`
}

func (c *DealCmd) Run() error {
	cards := deck.Shuffle(deck.New(), c.Seed)[:game.HandCardCount]

	fmt.Printf("seed %q\n", c.Seed)
	fmt.Printf("initial: %s\n", deck.FormatCards(cards[:game.InitialDeal]))
	for round := 2; round <= game.FinalRound; round++ {
		start := game.InitialDeal + (round-2)*game.RoundDeal
		fmt.Printf("round %d: %s\n", round, deck.FormatCards(cards[start:start+game.RoundDeal]))
	}
	fmt.Printf("fantasyland deal: %s\n", deck.FormatCards(cards[:game.FantasylandDeal]))
	return nil
}
