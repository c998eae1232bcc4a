package game

import "time"

// Rules carries every tunable constant the engine consults: scoring, chip
// economy and timer durations. A single Rules value is shared by all hands
// in a room and never mutated mid-match.
type Rules struct {
	ScoopBonus    int
	PointsPerChip int
	StartChips    int
	WinThreshold  int

	InitialSetTimeout  time.Duration
	RoundTimeout       time.Duration
	FantasylandTimeout time.Duration
	RevealTimeout      time.Duration

	Royalties RoyaltyTable
}

// DefaultRules returns the standard match configuration.
func DefaultRules() *Rules {
	return &Rules{
		ScoopBonus:    3,
		PointsPerChip: 10,
		StartChips:    250,
		WinThreshold:  500,

		InitialSetTimeout:  45 * time.Second,
		RoundTimeout:       25 * time.Second,
		FantasylandTimeout: 90 * time.Second,
		RevealTimeout:      8 * time.Second,

		Royalties: DefaultRoyaltyTable(),
	}
}

// TurnTimeout returns the countdown duration for a phase type.
func (r *Rules) TurnTimeout(phase PhaseType) time.Duration {
	switch phase {
	case PhaseInitialSet:
		return r.InitialSetTimeout
	case PhaseFantasyland:
		return r.FantasylandTimeout
	default:
		return r.RoundTimeout
	}
}
