// Package hangman implements the core guessing engine: the answer, its
// masked view, letter bookkeeping, and the per-turn countdown.
package hangman

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidGuess is returned for input that is not a single alphabetic
// character. Invalid guesses never cost a life.
var ErrInvalidGuess = errors.New("guess must be a single alphabetic character")

// Result describes the outcome of applying one guess.
type Result struct {
	Correct  bool // the letter occurs in the answer
	Revealed int  // positions newly revealed by this guess
	Repeat   bool // letter was already guessed; nothing changed
}

// Round holds the state of one game: the answer, what the player has
// uncovered so far, and the lives remaining.
type Round struct {
	answer     string
	answerNorm []rune
	masked     []rune
	guessed    map[rune]bool
	wrong      map[rune]bool
	lives      int
	maxLives   int

	timer            *TurnTimer
	timeoutPenalized bool
}

// NewRound starts a fresh round for the given answer. Letters begin hidden;
// spaces and punctuation are visible from the start.
func NewRound(answer string, maxLives int) *Round {
	masked := make([]rune, 0, len(answer))
	for _, ch := range answer {
		if unicode.IsLetter(ch) {
			masked = append(masked, '_')
		} else {
			masked = append(masked, ch)
		}
	}
	return &Round{
		answer:     answer,
		answerNorm: []rune(strings.ToLower(answer)),
		masked:     masked,
		guessed:    make(map[rune]bool),
		wrong:      make(map[rune]bool),
		lives:      maxLives,
		maxLives:   maxLives,
	}
}

// Answer returns the original answer text.
func (r *Round) Answer() string { return r.answer }

// Masked returns the answer with unguessed letters shown as underscores.
func (r *Round) Masked() string { return string(r.masked) }

// Lives returns the lives remaining.
func (r *Round) Lives() int { return r.lives }

// MaxLives returns the lives the round started with.
func (r *Round) MaxLives() int { return r.maxLives }

// Guess applies a single-letter guess, case-insensitively. A correct guess
// reveals every matching position and preserves the answer's original case.
// A wrong guess is recorded and costs one life. A repeated guess is a free
// no-op.
func (r *Round) Guess(letter rune) (Result, error) {
	if !unicode.IsLetter(letter) {
		return Result{}, ErrInvalidGuess
	}
	letter = unicode.ToLower(letter)

	if r.guessed[letter] || r.wrong[letter] {
		return Result{Correct: r.guessed[letter], Repeat: true}, nil
	}

	revealed := 0
	original := []rune(r.answer)
	for i, ch := range r.answerNorm {
		if ch == letter && r.masked[i] == '_' {
			r.masked[i] = original[i]
			revealed++
		}
	}

	if revealed == 0 {
		r.wrong[letter] = true
		r.deductLife()
		return Result{}, nil
	}

	r.guessed[letter] = true
	return Result{Correct: true, Revealed: revealed}, nil
}

// Solved reports whether every letter has been revealed.
func (r *Round) Solved() bool {
	for _, ch := range r.masked {
		if ch == '_' {
			return false
		}
	}
	return true
}

// Dead reports whether the player is out of lives.
func (r *Round) Dead() bool { return r.lives <= 0 }

// StartTurn arms the countdown for the next guess.
func (r *Round) StartTurn(timeout time.Duration) {
	r.timer = NewTurnTimer(timeout)
	r.timer.Start()
	r.timeoutPenalized = false
}

// HandleTimeout deducts one life if the current turn has expired. At most
// one life is lost per turn no matter how often it is called. It reports
// whether a life was actually deducted.
func (r *Round) HandleTimeout() bool {
	if r.timer == nil || r.timeoutPenalized || !r.timer.Expired() {
		return false
	}
	r.deductLife()
	r.timeoutPenalized = true
	return true
}

// Deadline returns the absolute expiry time of the current turn, or the
// zero time if no turn has been started.
func (r *Round) Deadline() time.Time {
	if r.timer == nil {
		return time.Time{}
	}
	return r.timer.Deadline()
}

// RemainingTime returns the time left in the current turn.
func (r *Round) RemainingTime() time.Duration {
	if r.timer == nil {
		return 0
	}
	return r.timer.Remaining()
}

// WrongLetters returns the wrong guesses made so far, sorted for display.
func (r *Round) WrongLetters() []rune {
	return sortedKeys(r.wrong)
}

// GuessedLetters returns the correct guesses made so far, sorted.
func (r *Round) GuessedLetters() []rune {
	return sortedKeys(r.guessed)
}

func (r *Round) deductLife() {
	if r.lives > 0 {
		r.lives--
	}
}

func sortedKeys(set map[rune]bool) []rune {
	letters := make([]rune, 0, len(set))
	for ch := range set {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
