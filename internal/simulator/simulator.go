// Package simulator runs batches of blackjack sessions across strategy
// presets in parallel and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/randutil"
	"github.com/greerviau/blackjack/internal/strategy"
	"golang.org/x/sync/errgroup"
)

// Reporter receives progress notifications as strategies start and finish.
// Implementations must be safe for concurrent use.
type Reporter interface {
	StrategyStarted(name string)
	StrategyFinished(name string)
}

type nopReporter struct{}

func (nopReporter) StrategyStarted(string)  {}
func (nopReporter) StrategyFinished(string) {}

// Config holds the simulation parameters
type Config struct {
	Strategies []string
	Sessions   int // sessions per strategy
	MaxRounds  int // rounds per session, 0 for unlimited
	Bankroll   float64
	Rules      game.Rules
	Seed       int64
	Workers    int // 0 defaults to the CPU count

	Logger   *log.Logger
	Clock    quartz.Clock
	Reporter Reporter
}

// Simulator runs blackjack strategy simulations
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Reporter == nil {
		config.Reporter = nopReporter{}
	}
	return &Simulator{config: config}
}

// Run executes every strategy's sessions and returns one aggregate per
// strategy, in the order the strategies were configured. Each strategy is
// a unit of parallel work; its sessions run sequentially on deterministic
// per-session seeds, so results are reproducible regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) ([]AggregateResult, error) {
	cfg := s.config
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if cfg.Sessions <= 0 {
		return nil, fmt.Errorf("simulator: sessions must be positive, got %d", cfg.Sessions)
	}

	// Fail fast on unknown strategy names before any work starts
	for _, name := range cfg.Strategies {
		if _, err := strategy.NewPreset(name, cfg.Bankroll, cfg.Rules); err != nil {
			return nil, err
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]AggregateResult, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		i, name := i, name
		g.Go(func() error {
			cfg.Reporter.StrategyStarted(name)
			start := cfg.Clock.Now()

			agg, err := s.runStrategy(ctx, name)
			if err != nil {
				return err
			}
			agg.Elapsed = cfg.Clock.Now().Sub(start)
			results[i] = agg

			cfg.Reporter.StrategyFinished(name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runStrategy plays every session for one strategy. A session that fails
// mid-play is logged and counted; it does not abort its siblings.
func (s *Simulator) runStrategy(ctx context.Context, name string) (AggregateResult, error) {
	cfg := s.config
	sessions := make([]SessionResult, 0, cfg.Sessions)
	failed := 0

	for i := 0; i < cfg.Sessions; i++ {
		if err := ctx.Err(); err != nil {
			return AggregateResult{}, err
		}

		seed := randutil.Derive(cfg.Seed, name, i)

		player, err := strategy.NewPreset(name, cfg.Bankroll, cfg.Rules)
		if err != nil {
			return AggregateResult{}, err
		}

		g, err := game.NewGame(cfg.Rules, player, cfg.Bankroll, randutil.New(seed), cfg.Logger)
		if err != nil {
			return AggregateResult{}, err
		}

		summary, err := g.Play(cfg.MaxRounds)
		if err != nil {
			failed++
			cfg.Logger.Warn("session failed",
				"strategy", name, "session", i, "seed", seed, "error", err)
			continue
		}

		sessions = append(sessions, newSessionResult(name, seed, summary))
	}

	return aggregate(name, sessions, failed), nil
}
