package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gallows/internal/hangman"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMenu draws the difficulty selection screen.
func (r *Renderer) RenderMenu() {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText(0, 0, "=== GALLOWS ===", title)

	plain := tcell.StyleDefault
	r.drawText(0, 2, "1) Beginner      (random word)", plain)
	r.drawText(0, 3, "2) Intermediate  (random phrase)", plain)

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawText(0, 5, "Press 1 or 2 to start. Q or Esc quits.", dim)

	r.screen.Show()
}

// RenderTurn draws the in-round HUD: the masked answer, lives, wrong
// letters, the countdown, and the feedback line from the previous turn.
func (r *Renderer) RenderTurn(round *hangman.Round, remaining time.Duration, message string) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText(0, 0, "=== GALLOWS ===", title)

	mask := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(0, 2, SpacedMask(round.Masked()), mask)

	r.drawText(0, 4, fmt.Sprintf("Lives: %d/%d", round.Lives(), round.MaxLives()), r.livesStyle(round))

	if wrong := round.WrongLetters(); len(wrong) > 0 {
		wrongStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
		r.drawText(0, 5, "Wrong: "+strings.ToUpper(spaceOut(wrong)), wrongStyle)
	}

	timer := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	r.drawText(0, 6, fmt.Sprintf("Time: %2ds", ceilSeconds(remaining)), timer)

	if message != "" {
		r.drawText(0, 8, message, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawText(0, 10, "Guess a letter (a-z). Esc quits.", dim)

	r.screen.Show()
}

// RenderOutcome draws the end-of-round screen with the answer revealed.
func (r *Renderer) RenderOutcome(round *hangman.Round, won bool) {
	r.screen.Clear()

	if won {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		r.drawText(0, 0, "You solved it!", style)
	} else {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		r.drawText(0, 0, "No lives left.", style)
	}

	r.drawText(0, 2, "Answer: "+round.Answer(), tcell.StyleDefault)

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawText(0, 4, "Press any key to continue.", dim)

	r.screen.Show()
}

// RenderQuit draws the mid-round quit screen, revealing the answer.
func (r *Renderer) RenderQuit(round *hangman.Round) {
	r.screen.Clear()

	r.drawText(0, 0, "You quit the game.", tcell.StyleDefault.Bold(true))
	r.drawText(0, 2, "The answer was: "+round.Answer(), tcell.StyleDefault)

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawText(0, 4, "Press any key to continue.", dim)

	r.screen.Show()
}

// RenderReplay draws the play-again prompt.
func (r *Renderer) RenderReplay() {
	r.screen.Clear()

	r.drawText(0, 0, "Play again? (y/n)", tcell.StyleDefault.Bold(true))

	r.screen.Show()
}

// livesStyle color-codes the lives counter: green while comfortable,
// yellow when half are gone, red on the last life.
func (r *Renderer) livesStyle(round *hangman.Round) tcell.Style {
	switch {
	case round.Lives() <= 1:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case round.Lives() <= round.MaxLives()/2:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, style)
		col++
	}
}

// SpacedMask upper-cases a masked answer and spreads it one column per
// character so underscores are easy to count. A space in the answer becomes
// a wider gap between words.
func SpacedMask(masked string) string {
	runes := []rune(strings.ToUpper(masked))
	parts := make([]string, len(runes))
	for i, ch := range runes {
		parts[i] = string(ch)
	}
	return strings.Join(parts, " ")
}

// spaceOut joins runes with single spaces.
func spaceOut(letters []rune) string {
	parts := make([]string, len(letters))
	for i, ch := range letters {
		parts[i] = string(ch)
	}
	return strings.Join(parts, " ")
}

// ceilSeconds rounds a duration up to whole seconds for the countdown,
// never below zero.
func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
