package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarot-game/internal/shared"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TAROT_PLAYERS", "")
	t.Setenv("TAROT_SEED", "")
	t.Setenv("TAROT_CALLED_KING", "")
	t.Setenv("TAROT_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Players: 5, Seed: 0, CalledKing: shared.Hearts, LogLevel: logrus.InfoLevel}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAROT_PLAYERS", "4")
	t.Setenv("TAROT_SEED", "1234")
	t.Setenv("TAROT_CALLED_KING", "spades")
	t.Setenv("TAROT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, shared.Spades, cfg.CalledKing)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"TAROT_PLAYERS":     "7",
		"TAROT_SEED":        "-3",
		"TAROT_CALLED_KING": "cups",
		"TAROT_LOG_LEVEL":   "loud",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvIntFallsBack(t *testing.T) {
	t.Setenv("TAROT_TEST_INT", "three")
	assert.Equal(t, 3, getEnvInt("TAROT_TEST_INT", 3))
}
