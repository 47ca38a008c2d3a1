// Package game provides the main game loop and state management.
package game

// State represents the current phase of the game loop.
type State int

const (
	// StateMenu is the difficulty selection screen.
	StateMenu State = iota
	// StateAwaitingGuess means a turn is open and the countdown is running.
	StateAwaitingGuess
	// StateEvaluating means a guess or timeout is being applied.
	StateEvaluating
	// StateWon means the answer was fully revealed.
	StateWon
	// StateLost means the player ran out of lives.
	StateLost
	// StateReplay is the play-again prompt.
	StateReplay
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateEvaluating:
		return "evaluating"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateReplay:
		return "replay"
	default:
		return "unknown"
	}
}
