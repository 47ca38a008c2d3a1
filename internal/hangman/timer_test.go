package hangman

import (
	"testing"
	"time"
)

func TestTurnTimerCountsDownAndExpires(t *testing.T) {
	now := time.Unix(0, 0)

	timer := NewTurnTimer(15 * time.Second)
	timer.now = func() time.Time { return now }
	timer.Start()

	if timer.Expired() {
		t.Error("Expired() = true immediately after Start")
	}
	if got := timer.Remaining(); got != 15*time.Second {
		t.Errorf("Remaining() = %v, want 15s", got)
	}

	now = now.Add(10 * time.Second)
	if timer.Expired() {
		t.Error("Expired() = true with 5s left")
	}
	if got := timer.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining() = %v, want 5s", got)
	}

	now = now.Add(6 * time.Second)
	if !timer.Expired() {
		t.Error("Expired() = false past the deadline")
	}
	if got := timer.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
}

func TestTurnTimerBeforeStart(t *testing.T) {
	timer := NewTurnTimer(15 * time.Second)

	if timer.Expired() {
		t.Error("Expired() = true before Start")
	}
	if got := timer.Remaining(); got != 15*time.Second {
		t.Errorf("Remaining() = %v, want full duration before Start", got)
	}
}

func TestTurnTimerDeadline(t *testing.T) {
	now := time.Unix(100, 0)

	timer := NewTurnTimer(15 * time.Second)
	timer.now = func() time.Time { return now }
	timer.Start()

	want := now.Add(15 * time.Second)
	if got := timer.Deadline(); !got.Equal(want) {
		t.Errorf("Deadline() = %v, want %v", got, want)
	}
}
