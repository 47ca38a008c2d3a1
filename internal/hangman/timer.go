package hangman

import "time"

// TurnTimer is a countdown for a single guessing turn, tracked against a
// monotonic deadline.
type TurnTimer struct {
	duration time.Duration
	deadline time.Time
	now      func() time.Time // swapped for a fake clock in tests
}

// NewTurnTimer creates a timer for the given duration. The countdown does
// not begin until Start is called.
func NewTurnTimer(duration time.Duration) *TurnTimer {
	return &TurnTimer{duration: duration, now: time.Now}
}

// Start begins the countdown from now.
func (t *TurnTimer) Start() {
	t.deadline = t.now().Add(t.duration)
}

// Remaining returns the time left before expiry, never negative.
func (t *TurnTimer) Remaining() time.Duration {
	if t.deadline.IsZero() {
		return t.duration
	}
	if left := t.deadline.Sub(t.now()); left > 0 {
		return left
	}
	return 0
}

// Expired reports whether the countdown has reached zero.
func (t *TurnTimer) Expired() bool {
	return t.Remaining() <= 0
}

// Deadline returns the absolute time at which the turn expires.
func (t *TurnTimer) Deadline() time.Time {
	if t.deadline.IsZero() {
		return t.now().Add(t.duration)
	}
	return t.deadline
}
