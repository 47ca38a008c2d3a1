package wordbank

import (
	"errors"
	"math/rand"
)

// Difficulty selects which list a round draws its answer from.
type Difficulty int

const (
	// DifficultyBeginner draws a single word.
	DifficultyBeginner Difficulty = iota
	// DifficultyIntermediate draws a phrase that may contain spaces.
	DifficultyIntermediate
)

// String returns a human-readable difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "beginner"
	case DifficultyIntermediate:
		return "intermediate"
	default:
		return "unknown"
	}
}

// wordsFile represents the structure of words.json.
type wordsFile struct {
	Words   []string `json:"words"`
	Phrases []string `json:"phrases"`
}

// Bank holds the candidate answers for both difficulties.
type Bank struct {
	words   []string
	phrases []string
}

// NewBank creates a bank from the given lists. Both lists must be non-empty.
func NewBank(words, phrases []string) (*Bank, error) {
	if len(words) == 0 {
		return nil, errors.New("word list is empty")
	}
	if len(phrases) == 0 {
		return nil, errors.New("phrase list is empty")
	}
	return &Bank{words: words, phrases: phrases}, nil
}

// LoadBank loads a bank from the embedded words.json.
func LoadBank() (*Bank, error) {
	file, err := Load[wordsFile]("words.json")
	if err != nil {
		return nil, err
	}
	return NewBank(file.Words, file.Phrases)
}

// MustLoadBank loads a bank, panicking on error. Use when the lists must be
// present for the game to function.
func MustLoadBank() *Bank {
	bank, err := LoadBank()
	if err != nil {
		panic(err)
	}
	return bank
}

// Pick returns a uniformly random entry for the given difficulty.
func (b *Bank) Pick(difficulty Difficulty, rng *rand.Rand) string {
	if difficulty == DifficultyIntermediate {
		return b.phrases[rng.Intn(len(b.phrases))]
	}
	return b.words[rng.Intn(len(b.words))]
}

// Words returns all beginner entries.
func (b *Bank) Words() []string { return b.words }

// Phrases returns all intermediate entries.
func (b *Bank) Phrases() []string { return b.phrases }

// WordCount returns the number of beginner entries.
func (b *Bank) WordCount() int { return len(b.words) }

// PhraseCount returns the number of intermediate entries.
func (b *Bank) PhraseCount() int { return len(b.phrases) }
