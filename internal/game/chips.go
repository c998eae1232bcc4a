package game

// ChipTransfer records one settled transfer between two players. Amount is
// the capped chip count moved from loser to winner; Points is the uncapped
// point differential it was derived from.
type ChipTransfer struct {
	WinnerID string
	LoserID  string
	Points   int
	Amount   int
}

// TransferChips converts a point differential between two players into a
// conserved chip transfer: chips = points * pointsPerChip, capped at the
// loser's balance so no balance goes negative. The same amount is credited
// and debited, so the table's chip sum never changes. A zero differential
// moves nothing.
func TransferChips(a, b *PlayerState, pointDiff, pointsPerChip int) ChipTransfer {
	if pointDiff == 0 {
		return ChipTransfer{}
	}

	winner, loser := a, b
	points := pointDiff
	if pointDiff < 0 {
		winner, loser = b, a
		points = -pointDiff
	}

	amount := points * pointsPerChip
	if amount > loser.TableChips {
		amount = loser.TableChips
	}

	winner.TableChips += amount
	loser.TableChips -= amount

	return ChipTransfer{
		WinnerID: winner.ID,
		LoserID:  loser.ID,
		Points:   points,
		Amount:   amount,
	}
}

// AtThreshold reports whether a balance has hit a terminal condition: the
// win threshold from above or an empty stack from below. With a conserved
// chip sum these are two readings of the same event in a heads-up match.
func AtThreshold(chips, winThreshold int) bool {
	return chips <= 0 || chips >= winThreshold
}
