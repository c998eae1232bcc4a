package game

// HandStats is the per-player, per-hand delta handed to the persistence
// collaborator at reveal time. The engine knows nothing about databases or
// accounts; player ids are opaque.
type HandStats struct {
	PlayerID           string
	HandsPlayed        int
	HandsWon           int
	RoyaltiesEarned    int
	Fouled             bool
	EnteredFantasyland bool
}

// StatsSink receives stat deltas once per completed hand.
type StatsSink interface {
	RecordHandStats(roomID string, handNumber int, stats []HandStats)
}

// NopStatsSink discards all deltas.
type NopStatsSink struct{}

// RecordHandStats implements StatsSink.
func (NopStatsSink) RecordHandStats(string, int, []HandStats) {}
