package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"tarot-game/internal/shared"
)

// Config holds the settings of the dealing demo.
type Config struct {
	Players    int          // Number of seats, 3 to 5
	Seed       uint64       // Shuffle seed, 0 picks a random one
	CalledKing shared.Suit  // Suit of the king called by the taker
	LogLevel   logrus.Level // Verbosity of the engine logs
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Players: getEnvInt("TAROT_PLAYERS", 5),
	}

	seed := getEnv("TAROT_SEED", "0")
	s, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAROT_SEED %q: %w", seed, err)
	}
	cfg.Seed = s

	cfg.CalledKing, err = shared.ParseSuit(getEnv("TAROT_CALLED_KING", string(shared.Hearts)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAROT_CALLED_KING: %w", err)
	}

	cfg.LogLevel, err = logrus.ParseLevel(getEnv("TAROT_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAROT_LOG_LEVEL: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the table size.
func (c Config) Validate() error {
	if c.Players < 3 || c.Players > 5 {
		return fmt.Errorf("tarot is played by 3 to 5 players, got %d", c.Players)
	}
	return nil
}

// getEnv retrieves an environment variable's value or returns a default.
func getEnv(key, defVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defVal
}

// getEnvInt retrieves an integer value from an environment variable or returns a default value.
func getEnvInt(key string, defVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defVal
	}
	return i
}
