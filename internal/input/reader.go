// Package input turns raw terminal events into game input: single-key
// guesses raced against a per-turn deadline, and plain key reads for menus.
package input

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrTimeout is returned when no guess arrives before the turn deadline.
// It is a scored event, not a failure.
var ErrTimeout = errors.New("guess timed out")

// ErrQuit is returned when the player asks to leave (Esc or Ctrl-C), or
// when the event stream closes.
var ErrQuit = errors.New("player quit")

// tickInterval is how often the countdown callback fires while waiting.
const tickInterval = 200 * time.Millisecond

// Syncer redraws the terminal after a resize. *ui.Screen satisfies it.
type Syncer interface {
	Sync()
}

// Guess is a single key press submitted by the player.
type Guess struct {
	Letter rune
}

// Reader reads player input from a terminal event stream.
type Reader struct {
	events <-chan tcell.Event
	syncer Syncer
}

// NewReader creates a reader over the given event stream. syncer may be nil
// when resize handling is not needed.
func NewReader(events <-chan tcell.Event, syncer Syncer) *Reader {
	return &Reader{events: events, syncer: syncer}
}

// ReadGuess waits for a single key press, racing it against the absolute
// deadline. onTick, if non-nil, is invoked periodically with the time
// remaining so the caller can refresh a countdown display. The deadline is
// absolute: re-prompting after invalid input does not grant extra time.
func (r *Reader) ReadGuess(ctx context.Context, deadline time.Time, onTick func(remaining time.Duration)) (Guess, error) {
	expire := time.NewTimer(time.Until(deadline))
	defer expire.Stop()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Guess{}, ctx.Err()

		case <-expire.C:
			return Guess{}, ErrTimeout

		case <-ticker.C:
			if onTick != nil {
				onTick(remainingUntil(deadline))
			}

		case ev, ok := <-r.events:
			if !ok {
				return Guess{}, ErrQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return Guess{}, ErrQuit
				case tcell.KeyRune:
					return Guess{Letter: ev.Rune()}, nil
				}
			case *tcell.EventResize:
				if r.syncer != nil {
					r.syncer.Sync()
				}
			}
		}
	}
}

// ReadKey blocks until the player presses a key, with no deadline. It
// returns the rune for printable keys and 0 for other keys (Enter, arrows).
// Esc and Ctrl-C return ErrQuit.
func (r *Reader) ReadKey(ctx context.Context) (rune, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()

		case ev, ok := <-r.events:
			if !ok {
				return 0, ErrQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return 0, ErrQuit
				case tcell.KeyRune:
					return ev.Rune(), nil
				default:
					return 0, nil
				}
			case *tcell.EventResize:
				if r.syncer != nil {
					r.syncer.Sync()
				}
			}
		}
	}
}

// remainingUntil returns the time left before deadline, never negative.
func remainingUntil(deadline time.Time) time.Duration {
	if left := time.Until(deadline); left > 0 {
		return left
	}
	return 0
}
