package game

import "time"

// Timer is one player's turn countdown. A timer is created when cards are
// dealt for a round, stopped when the turn is submitted (voluntarily or by
// auto-placement), and never reused across rounds. The engine never sleeps
// on a timer; the external scheduler polls for expiry through the room.
type Timer struct {
	PlayerID string
	Phase    PhaseType
	Start    time.Time
	Duration time.Duration
	active   bool
}

// NewTimer starts a countdown at the given instant.
func NewTimer(playerID string, phase PhaseType, start time.Time, duration time.Duration) *Timer {
	return &Timer{
		PlayerID: playerID,
		Phase:    phase,
		Start:    start,
		Duration: duration,
		active:   true,
	}
}

// Deadline returns the instant the timer expires.
func (t *Timer) Deadline() time.Time {
	return t.Start.Add(t.Duration)
}

// Remaining returns the time left at now, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if !t.active {
		return 0
	}
	left := t.Deadline().Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Active reports whether the timer is still running.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Expired reports whether an active timer has passed its deadline.
func (t *Timer) Expired(now time.Time) bool {
	return t.Active() && !now.Before(t.Deadline())
}

// Stop permanently deactivates the timer.
func (t *Timer) Stop() {
	if t != nil {
		t.active = false
	}
}
