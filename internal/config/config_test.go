package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/omaha-odds/internal/ladder"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "omaha-odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ladder.DefaultRules, cfg.Rules())
	require.NoError(t, cfg.Validate())
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  players = 3
}

simulation {
  workers = 2
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, 13, cfg.Game.Ranks, "unset game settings fall back")
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, 10000, cfg.Simulation.Trials)
	assert.Equal(t, "localhost:8080", cfg.Server.ListenAddress())

	rules := cfg.Rules()
	assert.Equal(t, 3, rules.NumPlayers)
	assert.Equal(t, 5, rules.BoardSize)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `game { players = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few players", func(c *Config) { c.Game.Players = 1 }},
		{"too few ranks", func(c *Config) { c.Game.Ranks = 4 }},
		{"deck too small", func(c *Config) { c.Game.Ranks = 5; c.Game.Suits = 1 }},
		{"zero trials", func(c *Config) { c.Simulation.Trials = 0 }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
