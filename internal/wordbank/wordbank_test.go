package wordbank

import (
	"math/rand"
	"testing"
)

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("Failed to load bank: %v", err)
	}

	if bank.WordCount() == 0 {
		t.Error("Expected a non-empty word list")
	}
	if bank.PhraseCount() == 0 {
		t.Error("Expected a non-empty phrase list")
	}
}

func TestNewBankRejectsEmptyLists(t *testing.T) {
	if _, err := NewBank(nil, []string{"hello world"}); err == nil {
		t.Error("NewBank with empty words should fail")
	}
	if _, err := NewBank([]string{"banana"}, nil); err == nil {
		t.Error("NewBank with empty phrases should fail")
	}
	if _, err := NewBank([]string{"banana"}, []string{"hello world"}); err != nil {
		t.Errorf("NewBank with non-empty lists failed: %v", err)
	}
}

func TestPickReturnsEntryFromList(t *testing.T) {
	bank, err := NewBank(
		[]string{"apple", "banana", "cherry"},
		[]string{"hello world", "unit testing"},
	)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))

	words := map[string]bool{"apple": true, "banana": true, "cherry": true}
	phrases := map[string]bool{"hello world": true, "unit testing": true}

	for i := 0; i < 20; i++ {
		if w := bank.Pick(DifficultyBeginner, rng); !words[w] {
			t.Errorf("Pick(Beginner) = %q, not in word list", w)
		}
		if p := bank.Pick(DifficultyIntermediate, rng); !phrases[p] {
			t.Errorf("Pick(Intermediate) = %q, not in phrase list", p)
		}
	}
}

func TestPickIsDeterministicWithSameSeed(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("Failed to load bank: %v", err)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		p1 := bank.Pick(DifficultyBeginner, rng1)
		p2 := bank.Pick(DifficultyBeginner, rng2)
		if p1 != p2 {
			t.Errorf("Pick %d mismatch: %q != %q", i, p1, p2)
		}
	}
}

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		expected   string
	}{
		{DifficultyBeginner, "beginner"},
		{DifficultyIntermediate, "intermediate"},
		{Difficulty(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.difficulty.String()
		if got != tt.expected {
			t.Errorf("Difficulty(%d).String() = %q, want %q", tt.difficulty, got, tt.expected)
		}
	}
}
