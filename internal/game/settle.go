package game

import "github.com/lttcmd/pineapple-app-sub000/internal/evaluator"

// ScoreDetail is one side's itemised outcome of a pairwise settlement.
// Row wins and royalties are indexed by Row. Royalties are earned for hand
// strength regardless of who wins the row, so the two sides' totals are not
// negatives of each other once royalties are included.
type ScoreDetail struct {
	Fouled    bool
	RowWins   [3]int
	Royalties [3]int
	Scoop     int
	Total     int
}

// RowWinCount returns the number of rows this side won.
func (d ScoreDetail) RowWinCount() int {
	return d.RowWins[RowTop] + d.RowWins[RowMiddle] + d.RowWins[RowBottom]
}

// RoyaltyTotal returns the summed royalties across rows.
func (d ScoreDetail) RoyaltyTotal() int {
	return d.Royalties[RowTop] + d.Royalties[RowMiddle] + d.Royalties[RowBottom]
}

// PairResult is the settlement between exactly two boards.
type PairResult struct {
	A ScoreDetail
	B ScoreDetail
}

// SettlePairwise produces the full score breakdown between two boards.
//
// Foul matrix: both fouled yields all zeros; exactly one foul awards the
// clean side all three rows, the scoop bonus and its own royalties while the
// fouling side totals zero and never collects royalties. With two clean
// boards each row is compared independently (ties push), a sweep of all
// three rows earns the scoop bonus, and each side adds its own royalties.
func SettlePairwise(a, b *Board, rules *Rules) PairResult {
	foulA := ValidateBoard(a).Fouled
	foulB := ValidateBoard(b).Fouled

	switch {
	case foulA && foulB:
		return PairResult{
			A: ScoreDetail{Fouled: true},
			B: ScoreDetail{Fouled: true},
		}
	case foulA:
		return PairResult{
			A: ScoreDetail{Fouled: true},
			B: sweepDetail(b, rules),
		}
	case foulB:
		return PairResult{
			A: sweepDetail(a, rules),
			B: ScoreDetail{Fouled: true},
		}
	}

	var da, db ScoreDetail
	for _, row := range []Row{RowTop, RowMiddle, RowBottom} {
		switch compareRow(a, b, row) {
		case 1:
			da.RowWins[row] = 1
		case -1:
			db.RowWins[row] = 1
		}
	}

	if da.RowWinCount() == 3 {
		da.Scoop = rules.ScoopBonus
	}
	if db.RowWinCount() == 3 {
		db.Scoop = rules.ScoopBonus
	}

	fillRoyalties(&da, a, rules)
	fillRoyalties(&db, b, rules)

	da.Total = da.RowWinCount() + da.Scoop + da.RoyaltyTotal()
	db.Total = db.RowWinCount() + db.Scoop + db.RoyaltyTotal()

	return PairResult{A: da, B: db}
}

// sweepDetail builds the clean side's score when the opponent fouled.
func sweepDetail(b *Board, rules *Rules) ScoreDetail {
	d := ScoreDetail{
		RowWins: [3]int{1, 1, 1},
		Scoop:   rules.ScoopBonus,
	}
	fillRoyalties(&d, b, rules)
	d.Total = d.RowWinCount() + d.Scoop + d.RoyaltyTotal()
	return d
}

func fillRoyalties(d *ScoreDetail, b *Board, rules *Rules) {
	if v, err := rules.Royalties.Top(b.Top); err == nil {
		d.Royalties[RowTop] = v
	}
	if v, err := rules.Royalties.Five(b.Middle, RowMiddle); err == nil {
		d.Royalties[RowMiddle] = v
	}
	if v, err := rules.Royalties.Five(b.Bottom, RowBottom); err == nil {
		d.Royalties[RowBottom] = v
	}
}

// compareRow compares one row of two validated boards: 1 if a is stronger,
// -1 if b is, 0 on a push.
func compareRow(a, b *Board, row Row) int {
	if row == RowTop {
		ra, errA := evaluator.RankTop3(a.Top)
		rb, errB := evaluator.RankTop3(b.Top)
		if errA != nil || errB != nil {
			return 0
		}
		return ra.Compare(rb)
	}

	ra, errA := evaluator.Rank5(a.RowCards(row))
	rb, errB := evaluator.Rank5(b.RowCards(row))
	if errA != nil || errB != nil {
		return 0
	}
	return ra.Compare(rb)
}
