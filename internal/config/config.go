// Package config loads simulation configuration from HCL files
package config

import (
	"fmt"
	"os"

	"github.com/greerviau/blackjack/internal/game"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of the HCL configuration file
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Table      *TableSettings      `hcl:"table,block"`
	Strategies []StrategyConfig    `hcl:"strategy,block"`
}

// SimulationSettings controls the batch run
type SimulationSettings struct {
	Sessions     int     `hcl:"sessions,optional"`
	Rounds       int     `hcl:"rounds,optional"`
	Bankroll     float64 `hcl:"bankroll,optional"`
	Seed         int64   `hcl:"seed,optional"`
	Workers      int     `hcl:"workers,optional"`
	HandsPerHour int     `hcl:"hands_per_hour,optional"`
	IncludeExit  bool    `hcl:"include_exit,optional"`
	LogLevel     string  `hcl:"log_level,optional"`
}

// TableSettings mirror the game rules. Booleans that default to true are
// pointers so an explicit false can be told apart from an omitted value.
type TableSettings struct {
	Decks           int     `hcl:"decks,optional"`
	MinBet          float64 `hcl:"min_bet,optional"`
	MaxBet          float64 `hcl:"max_bet,optional"`
	BlackjackPayout float64 `hcl:"blackjack_payout,optional"`
	Penetration     float64 `hcl:"penetration,optional"`
	H17             *bool   `hcl:"h17,optional"`
	DAS             *bool   `hcl:"das,optional"`
	LateSurrender   bool    `hcl:"late_surrender,optional"`
	MaxSplits       *int    `hcl:"max_splits,optional"`
	HitSplitAces    bool    `hcl:"hit_split_aces,optional"`
	ResplitAces     *bool   `hcl:"resplit_aces,optional"`
}

// StrategyConfig names a preset strategy to simulate
type StrategyConfig struct {
	Name string `hcl:"name,label"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Sessions:     1000,
			Rounds:       500,
			Bankroll:     1000,
			HandsPerHour: 70,
			LogLevel:     "info",
		},
		Table: &TableSettings{},
	}
}

// Load reads an HCL configuration file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if cfg.Simulation == nil {
		cfg.Simulation = &SimulationSettings{}
	}
	if cfg.Simulation.Sessions == 0 {
		cfg.Simulation.Sessions = 1000
	}
	if cfg.Simulation.Rounds == 0 {
		cfg.Simulation.Rounds = 500
	}
	if cfg.Simulation.Bankroll == 0 {
		cfg.Simulation.Bankroll = 1000
	}
	if cfg.Simulation.HandsPerHour == 0 {
		cfg.Simulation.HandsPerHour = 70
	}
	if cfg.Simulation.LogLevel == "" {
		cfg.Simulation.LogLevel = "info"
	}
	if cfg.Table == nil {
		cfg.Table = &TableSettings{}
	}

	return &cfg, nil
}

// Rules builds the table rules, falling back to the standard table for
// every omitted setting.
func (c *Config) Rules() game.Rules {
	rules := game.DefaultRules()
	t := c.Table
	if t == nil {
		return rules
	}

	if t.Decks != 0 {
		rules.Decks = t.Decks
	}
	if t.MinBet != 0 {
		rules.MinBet = t.MinBet
	}
	if t.MaxBet != 0 {
		rules.MaxBet = t.MaxBet
	}
	if t.BlackjackPayout != 0 {
		rules.BlackjackPayout = t.BlackjackPayout
	}
	if t.Penetration != 0 {
		rules.Penetration = t.Penetration
	}
	if t.H17 != nil {
		rules.H17 = *t.H17
	}
	if t.DAS != nil {
		rules.DAS = *t.DAS
	}
	rules.LateSurrender = t.LateSurrender
	if t.MaxSplits != nil {
		rules.MaxSplits = *t.MaxSplits
	}
	rules.HitSplitAces = t.HitSplitAces
	if t.ResplitAces != nil {
		rules.ResplitAces = *t.ResplitAces
	}
	return rules
}

// StrategyNames returns the strategies named in the file, if any
func (c *Config) StrategyNames() []string {
	names := make([]string, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		names = append(names, s.Name)
	}
	return names
}

// Validate checks the configuration for coherence
func (c *Config) Validate() error {
	if c.Simulation.Sessions <= 0 {
		return fmt.Errorf("sessions must be positive, got %d", c.Simulation.Sessions)
	}
	if c.Simulation.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", c.Simulation.Rounds)
	}
	if c.Simulation.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %f", c.Simulation.Bankroll)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Simulation.Workers)
	}
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	return nil
}
