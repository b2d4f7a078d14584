package config

import (
	"connect4/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		for _, key := range []string{"C4_SIMULATIONS", "C4_GOROUTINES", "C4_SEED", "C4_LOG_LEVEL", "C4_GAMES", "C4_RESULTS_DIR"} {
			t.Setenv(key, "")
		}

		cfg := FromEnv()

		require.Equal(t, meta.SIMULATIONS, cfg.Simulations)
		require.Equal(t, meta.GOROUTINES, cfg.Goroutines)
		require.Zero(t, cfg.Seed)
		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		require.Equal(t, meta.GAMES, cfg.Games)
		require.Equal(t, meta.RESULTS_DIR, cfg.ResultsDir)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("C4_SIMULATIONS", "250")
		t.Setenv("C4_GOROUTINES", "4")
		t.Setenv("C4_SEED", "42")
		t.Setenv("C4_LOG_LEVEL", "debug")
		t.Setenv("C4_GAMES", "3")
		t.Setenv("C4_RESULTS_DIR", "/tmp/c4")

		cfg := FromEnv()

		require.Equal(t, &Config{
			Simulations: 250,
			Goroutines:  4,
			Seed:        42,
			LogLevel:    zerolog.DebugLevel,
			Games:       3,
			ResultsDir:  "/tmp/c4",
		}, cfg)
	})

	t.Run("falls back on malformed values", func(t *testing.T) {
		t.Setenv("C4_SIMULATIONS", "lots")
		t.Setenv("C4_SEED", "-1")
		t.Setenv("C4_LOG_LEVEL", "loud")

		cfg := FromEnv()

		require.Equal(t, meta.SIMULATIONS, cfg.Simulations)
		require.Zero(t, cfg.Seed)
		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("C4_GAMES=7\n"), 0644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("C4_GAMES", "")
	os.Unsetenv("C4_GAMES")

	cfg := Load()

	require.Equal(t, 7, cfg.Games, ".env values should be loaded")
}
