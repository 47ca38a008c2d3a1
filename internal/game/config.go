package game

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultMaxLives    = 6
	defaultTurnSeconds = 15
)

// Config holds game configuration options.
type Config struct {
	// MaxLives is the number of wrong guesses or timeouts allowed per round.
	MaxLives int
	// TurnTimeout is the time allowed for each guess.
	TurnTimeout time.Duration
	// Seed for answer selection. A seed of 0 means seed from the clock.
	Seed int64
}

// LoadConfig reads configuration from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		MaxLives:    getEnvInt("GALLOWS_MAX_LIVES", defaultMaxLives),
		TurnTimeout: time.Duration(getEnvInt("GALLOWS_TURN_SECONDS", defaultTurnSeconds)) * time.Second,
		Seed:        int64(getEnvInt("GALLOWS_SEED", 0)),
	}
}

// getEnvInt returns an environment variable as an integer or a default value.
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
