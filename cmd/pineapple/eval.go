package main

import (
	"fmt"
	"strings"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/evaluator"
	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// EvalCmd ranks a single row given card codes like "As Kd Qh".
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards to evaluate (3 for a top row, 5 otherwise)"`
	Row   string   `help:"Row for royalty lookup: top, middle or bottom" default:"bottom"`
}

func (c *EvalCmd) Run() error {
	cards, err := deck.ParseCards(c.Cards...)
	if err != nil {
		return err
	}

	table := game.DefaultRoyaltyTable()

	switch len(cards) {
	case 3:
		tr, err := evaluator.RankTop3(cards)
		if err != nil {
			return err
		}
		royalty, err := table.Top(cards)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (royalty %d)\n", deck.FormatCards(cards), tr, royalty)

	case 5:
		hr, err := evaluator.Rank5(cards)
		if err != nil {
			return err
		}
		row, err := game.ParseRow(strings.ToLower(c.Row))
		if err != nil || row == game.RowTop {
			row = game.RowBottom
		}
		royalty, err := table.Five(cards, row)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (%s royalty %d)\n", deck.FormatCards(cards), hr, row, royalty)

	default:
		return fmt.Errorf("expected 3 or 5 cards, got %d", len(cards))
	}
	return nil
}
