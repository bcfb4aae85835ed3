package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Simulation.Sessions)
	assert.Equal(t, 500, cfg.Simulation.Rounds)
	assert.Equal(t, 1000.0, cfg.Simulation.Bankroll)
	assert.Equal(t, 70, cfg.Simulation.HandsPerHour)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
simulation {
  sessions       = 200
  rounds         = 100
  bankroll       = 5000
  seed           = 7
  workers        = 4
  hands_per_hour = 80
  include_exit   = true
}

table {
  decks            = 6
  min_bet          = 25
  max_bet          = 500
  blackjack_payout = 1.2
  penetration      = 0.8
  h17              = false
  das              = false
  late_surrender   = true
  max_splits       = 2
}

strategy "Basic + Flat" {}
strategy "Basic + Hi-Lo + Linear" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 200, cfg.Simulation.Sessions)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.IncludeExit)
	assert.Equal(t, []string{"Basic + Flat", "Basic + Hi-Lo + Linear"}, cfg.StrategyNames())

	rules := cfg.Rules()
	assert.Equal(t, 6, rules.Decks)
	assert.Equal(t, 25.0, rules.MinBet)
	assert.Equal(t, 500.0, rules.MaxBet)
	assert.Equal(t, 1.2, rules.BlackjackPayout)
	assert.Equal(t, 0.8, rules.Penetration)
	assert.False(t, rules.H17)
	assert.False(t, rules.DAS)
	assert.True(t, rules.LateSurrender)
	assert.Equal(t, 2, rules.MaxSplits)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
simulation {
  sessions = 50
}

table {
  decks = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Simulation.Sessions)
	assert.Equal(t, 500, cfg.Simulation.Rounds)

	rules := cfg.Rules()
	assert.Equal(t, 2, rules.Decks)
	// Omitted booleans keep the standard table behavior
	assert.True(t, rules.H17)
	assert.True(t, rules.DAS)
	assert.True(t, rules.ResplitAces)
	assert.Equal(t, 3, rules.MaxSplits)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `simulation { sessions = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sessions", func(c *Config) { c.Simulation.Sessions = 0 }},
		{"negative rounds", func(c *Config) { c.Simulation.Rounds = -1 }},
		{"zero bankroll", func(c *Config) { c.Simulation.Bankroll = 0 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"bad table", func(c *Config) { c.Table.Penetration = 2 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
