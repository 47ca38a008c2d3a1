package game

import (
	"testing"
	"time"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateMenu, "menu"},
		{StateAwaitingGuess, "awaiting_guess"},
		{StateEvaluating, "evaluating"},
		{StateWon, "won"},
		{StateLost, "lost"},
		{StateReplay, "replay"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.MaxLives != 6 {
		t.Errorf("MaxLives = %d, want 6", cfg.MaxLives)
	}
	if cfg.TurnTimeout != 15*time.Second {
		t.Errorf("TurnTimeout = %v, want 15s", cfg.TurnTimeout)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GALLOWS_MAX_LIVES", "3")
	t.Setenv("GALLOWS_TURN_SECONDS", "30")
	t.Setenv("GALLOWS_SEED", "12345")

	cfg := LoadConfig()

	if cfg.MaxLives != 3 {
		t.Errorf("MaxLives = %d, want 3", cfg.MaxLives)
	}
	if cfg.TurnTimeout != 30*time.Second {
		t.Errorf("TurnTimeout = %v, want 30s", cfg.TurnTimeout)
	}
	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
}

func TestLoadConfigIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("GALLOWS_MAX_LIVES", "plenty")

	cfg := LoadConfig()
	if cfg.MaxLives != 6 {
		t.Errorf("MaxLives = %d, want default 6 for malformed value", cfg.MaxLives)
	}
}
