package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gallows/internal/hangman"
	"github.com/samdwyer/gallows/internal/input"
	"github.com/samdwyer/gallows/internal/telemetry"
	"github.com/samdwyer/gallows/internal/ui"
	"github.com/samdwyer/gallows/internal/wordbank"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	reader   *input.Reader
	bank     *wordbank.Bank
	cfg      Config
	rng      *rand.Rand
	round    *hangman.Round
	state    State
	quit     chan struct{}
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	bank, err := wordbank.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load word bank: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	quit := make(chan struct{})
	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		bank:     bank,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateMenu,
		quit:     quit,
	}
	g.reader = input.NewReader(screen.Events(quit), screen)
	return g, nil
}

// Run executes the main game loop: menu, rounds, replay prompt.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("bank.words", g.bank.WordCount()),
		attribute.Int("bank.phrases", g.bank.PhraseCount()),
		attribute.Int("config.max_lives", g.cfg.MaxLives),
		attribute.Float64("config.turn_seconds", g.cfg.TurnTimeout.Seconds()),
	)
	initSpan.End()

	for {
		difficulty, err := g.chooseDifficulty(ctx)
		if errors.Is(err, input.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := g.playRound(ctx, difficulty); err != nil {
			return err
		}

		again, err := g.askReplay(ctx)
		if errors.Is(err, input.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// chooseDifficulty shows the menu and waits for a 1/2 selection.
func (g *Game) chooseDifficulty(ctx context.Context) (wordbank.Difficulty, error) {
	g.state = StateMenu
	for {
		g.renderer.RenderMenu()

		key, err := g.reader.ReadKey(ctx)
		if err != nil {
			return 0, err
		}
		switch key {
		case '1':
			return wordbank.DifficultyBeginner, nil
		case '2':
			return wordbank.DifficultyIntermediate, nil
		case 'q', 'Q':
			return 0, input.ErrQuit
		}
	}
}

// playRound runs a single game with a freshly picked answer. The player
// quitting mid-round is not an error: the answer is revealed and control
// returns to the replay prompt.
func (g *Game) playRound(ctx context.Context, difficulty wordbank.Difficulty) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.round")
	defer span.End()

	answer := g.bank.Pick(difficulty, g.rng)
	round := hangman.NewRound(answer, g.cfg.MaxLives)
	g.round = round

	span.SetAttributes(
		attribute.String("round.id", uuid.NewString()),
		attribute.String("round.difficulty", difficulty.String()),
		attribute.Int("round.answer_length", len(answer)),
	)

	outcome := "quit"
	turns := 0
	defer func() {
		span.SetAttributes(
			attribute.String("round.outcome", outcome),
			attribute.Int("round.turns", turns),
			attribute.Int("round.lives_left", round.Lives()),
		)
	}()

	message := ""

turnLoop:
	for !round.Solved() && !round.Dead() {
		round.StartTurn(g.cfg.TurnTimeout)
		g.state = StateAwaitingGuess
		turns++

		// Re-prompts after invalid or repeated input stay inside this
		// loop so they share the turn's deadline.
		for {
			g.renderer.RenderTurn(round, round.RemainingTime(), message)

			guess, err := g.reader.ReadGuess(ctx, round.Deadline(), func(remaining time.Duration) {
				g.renderer.RenderTurn(round, remaining, message)
			})
			switch {
			case errors.Is(err, input.ErrTimeout):
				g.state = StateEvaluating
				if round.HandleTimeout() {
					message = "Time's up! Life deducted."
				}
				continue turnLoop
			case errors.Is(err, input.ErrQuit):
				g.renderer.RenderQuit(round)
				g.waitKey(ctx)
				return nil
			case err != nil:
				return err
			}

			g.state = StateEvaluating
			result, gerr := round.Guess(guess.Letter)
			if errors.Is(gerr, hangman.ErrInvalidGuess) {
				message = "Enter a single letter (a-z)."
				g.state = StateAwaitingGuess
				continue
			}

			switch {
			case result.Repeat:
				message = fmt.Sprintf("Already guessed %q.", guess.Letter)
				g.state = StateAwaitingGuess
				continue
			case result.Correct:
				message = fmt.Sprintf("Revealed %d position(s).", result.Revealed)
			default:
				message = "Wrong guess. Life deducted."
			}
			continue turnLoop
		}
	}

	if round.Solved() {
		g.state = StateWon
		outcome = "won"
	} else {
		g.state = StateLost
		outcome = "lost"
	}

	g.renderer.RenderOutcome(round, round.Solved())
	g.waitKey(ctx)
	return nil
}

// askReplay shows the play-again prompt and waits for y/n.
func (g *Game) askReplay(ctx context.Context) (bool, error) {
	g.state = StateReplay
	for {
		g.renderer.RenderReplay()

		key, err := g.reader.ReadKey(ctx)
		if err != nil {
			return false, err
		}
		switch key {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N', 'q', 'Q':
			return false, nil
		}
	}
}

// waitKey blocks until any key is pressed. Quit keys count too.
func (g *Game) waitKey(ctx context.Context) {
	_, _ = g.reader.ReadKey(ctx)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.quit != nil {
		close(g.quit)
		g.quit = nil
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
