package main

import (
	"fmt"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// SettleCmd settles two complete boards and prints the itemised breakdown.
type SettleCmd struct {
	ATop    []string `help:"Player A top row (3 cards)" name:"a-top"`
	AMiddle []string `help:"Player A middle row (5 cards)" name:"a-middle"`
	ABottom []string `help:"Player A bottom row (5 cards)" name:"a-bottom"`
	BTop    []string `help:"Player B top row (3 cards)" name:"b-top"`
	BMiddle []string `help:"Player B middle row (5 cards)" name:"b-middle"`
	BBottom []string `help:"Player B bottom row (5 cards)" name:"b-bottom"`
}

func (c *SettleCmd) Run() error {
	boardA, err := buildBoard(c.ATop, c.AMiddle, c.ABottom)
	if err != nil {
		return fmt.Errorf("board A: %w", err)
	}
	boardB, err := buildBoard(c.BTop, c.BMiddle, c.BBottom)
	if err != nil {
		return fmt.Errorf("board B: %w", err)
	}

	rules := game.DefaultRules()
	result := game.SettlePairwise(boardA, boardB, rules)

	printSide("A", boardA, result.A)
	printSide("B", boardB, result.B)
	return nil
}

func buildBoard(top, middle, bottom []string) (*game.Board, error) {
	board := game.NewBoard()
	for row, codes := range map[game.Row][]string{
		game.RowTop:    top,
		game.RowMiddle: middle,
		game.RowBottom: bottom,
	} {
		cards, err := deck.ParseCards(codes...)
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			if err := board.Place(row, card); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

func printSide(name string, board *game.Board, detail game.ScoreDetail) {
	fmt.Printf("player %s: %s\n", name, board)
	if detail.Fouled {
		validation := game.ValidateBoard(board)
		fmt.Printf("  FOULED (%s), total 0\n", validation.Reason)
		return
	}
	fmt.Printf("  rows won %d, scoop %d, royalties %d (top %d, middle %d, bottom %d), total %d\n",
		detail.RowWinCount(), detail.Scoop, detail.RoyaltyTotal(),
		detail.Royalties[game.RowTop], detail.Royalties[game.RowMiddle], detail.Royalties[game.RowBottom],
		detail.Total)
}
