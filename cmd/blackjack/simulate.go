package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/greerviau/blackjack/internal/config"
	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/progress"
	"github.com/greerviau/blackjack/internal/simulator"
	"github.com/greerviau/blackjack/internal/strategy"
)

// SimulateCmd runs batches of sessions for a set of strategy presets and
// prints a comparison table. Values come from the HCL config file first;
// any flag given on the command line overrides it.
type SimulateCmd struct {
	Config     string `help:"Path to an HCL configuration file" default:"blackjack.hcl" type:"path"`
	Strategies []int  `help:"Run specific strategies by index (see the list command)"`

	Rounds       *int     `short:"r" help:"Rounds per session (default 500)"`
	Sessions     *int     `short:"g" help:"Sessions per strategy (default 1000)"`
	Bankroll     *float64 `short:"b" help:"Starting bankroll (default 1000)"`
	TableMin     *float64 `help:"Table minimum bet"`
	TableMax     *float64 `help:"Table maximum bet"`
	Decks        *int     `short:"d" help:"Number of decks in the shoe"`
	Splits       *int     `short:"s" help:"Maximum number of splits"`
	S17          bool     `help:"Dealer stands on soft 17"`
	NoDas        bool     `help:"Disallow double after split"`
	Surrender    bool     `help:"Allow late surrender"`
	Exit         bool     `help:"Include exit strategy presets"`
	Seed         *int64   `help:"Random seed for reproducibility"`
	HandsPerHour *int     `help:"Hands per hour for the $/hour column (default 70)"`
	Workers      *int     `help:"Parallel workers (default: CPU count)"`

	Plain bool `help:"Disable the live progress board"`
	Debug bool `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rules := c.tableRules(cfg)
	if err := rules.Validate(); err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	includeExit := c.Exit || cfg.Simulation.IncludeExit
	names, err := c.selectStrategies(cfg, includeExit)
	if err != nil {
		return err
	}

	printConfiguration(cfg, rules, names, seed)

	simConfig := simulator.Config{
		Strategies: names,
		Sessions:   cfg.Simulation.Sessions,
		MaxRounds:  cfg.Simulation.Rounds,
		Bankroll:   cfg.Simulation.Bankroll,
		Rules:      rules,
		Seed:       seed,
		Workers:    cfg.Simulation.Workers,
		Logger:     logger,
	}

	ctx := setupSignalHandler(logger)

	var results []simulator.AggregateResult
	if c.Plain {
		simConfig.Reporter = progress.NewLogReporter(logger)
		results, err = simulator.New(simConfig).Run(ctx)
	} else {
		board := progress.NewBoard(names)
		simConfig.Reporter = board

		var runErr error
		done := make(chan struct{})
		go func() {
			defer close(done)
			results, runErr = simulator.New(simConfig).Run(ctx)
			board.Done()
		}()
		if boardErr := board.Run(); boardErr != nil {
			logger.Warn("progress board failed", "error", boardErr)
		}
		<-done
		err = runErr
	}
	if err != nil {
		return err
	}

	printResults(results, cfg.Simulation.HandsPerHour, rules.LateSurrender)
	return nil
}

// applyOverrides layers explicit command line flags over the file config
func (c *SimulateCmd) applyOverrides(cfg *config.Config) {
	if c.Rounds != nil {
		cfg.Simulation.Rounds = *c.Rounds
	}
	if c.Sessions != nil {
		cfg.Simulation.Sessions = *c.Sessions
	}
	if c.Bankroll != nil {
		cfg.Simulation.Bankroll = *c.Bankroll
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.HandsPerHour != nil {
		cfg.Simulation.HandsPerHour = *c.HandsPerHour
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
}

// tableRules builds the table rules from the config file and rule flags
func (c *SimulateCmd) tableRules(cfg *config.Config) game.Rules {
	rules := cfg.Rules()
	if c.TableMin != nil {
		rules.MinBet = *c.TableMin
	}
	if c.TableMax != nil {
		rules.MaxBet = *c.TableMax
	}
	if c.Decks != nil {
		rules.Decks = *c.Decks
	}
	if c.Splits != nil {
		rules.MaxSplits = *c.Splits
	}
	if c.S17 {
		rules.H17 = false
	}
	if c.NoDas {
		rules.DAS = false
	}
	if c.Surrender {
		rules.LateSurrender = true
	}
	return rules
}

// selectStrategies resolves the strategy set: explicit indices first, then
// the config file's strategy blocks, then the whole catalogue.
func (c *SimulateCmd) selectStrategies(cfg *config.Config, includeExit bool) ([]string, error) {
	catalogue := strategy.PresetNames(includeExit)

	if len(c.Strategies) > 0 {
		names := make([]string, 0, len(c.Strategies))
		for _, idx := range c.Strategies {
			if idx < 0 || idx >= len(catalogue) {
				return nil, fmt.Errorf("strategy index %d out of range (0-%d)", idx, len(catalogue)-1)
			}
			names = append(names, catalogue[idx])
		}
		return names, nil
	}

	if fromFile := cfg.StrategyNames(); len(fromFile) > 0 {
		return fromFile, nil
	}

	return catalogue, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	gainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// signedStyle colors a formatted value by its sign
func signedStyle(v float64, s string) string {
	if v > 0 {
		return gainStyle.Render(s)
	}
	if v < 0 {
		return lossStyle.Render(s)
	}
	return s
}

func printConfiguration(cfg *config.Config, rules game.Rules, names []string, seed int64) {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Blackjack strategy simulator"))
	fmt.Println()
	fmt.Println(dimStyle.Render("Configuration"))
	fmt.Printf("  Strategies:       %d\n", len(names))
	fmt.Printf("  Bankroll:         $%.0f\n", cfg.Simulation.Bankroll)
	fmt.Printf("  Rounds/session:   %d\n", cfg.Simulation.Rounds)
	fmt.Printf("  Sessions:         %d\n", cfg.Simulation.Sessions)
	fmt.Printf("  Seed:             %d\n", seed)
	fmt.Println()
	fmt.Println(dimStyle.Render("Table rules"))
	fmt.Printf("  Bet range:        $%.0f - $%.0f\n", rules.MinBet, rules.MaxBet)
	fmt.Printf("  Decks:            %d\n", rules.Decks)
	fmt.Printf("  Dealer hits s17:  %s\n", yesNo(rules.H17))
	fmt.Printf("  Double on split:  %s\n", yesNo(rules.DAS))
	fmt.Printf("  Late surrender:   %s\n", yesNo(rules.LateSurrender))
	fmt.Printf("  Max splits:       %d\n", rules.MaxSplits)
	fmt.Println()
}

func printResults(results []simulator.AggregateResult, handsPerHour int, showSurrender bool) {
	if len(results) == 0 {
		return
	}

	nameWidth := 0
	for _, r := range results {
		if len(r.Strategy) > nameWidth {
			nameWidth = len(r.Strategy)
		}
	}
	nameWidth += 2

	// Best expected value first
	sorted := make([]simulator.AggregateResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EVPerRound > sorted[j].EVPerRound
	})

	fmt.Println()
	fmt.Println(headerStyle.Render("Simulation results"))
	fmt.Println()

	header := fmt.Sprintf("  %-*s%10s%10s%13s%8s%8s%8s", nameWidth,
		"Strategy", "Rounds", "$/Hour", "House Edge", "Win", "Push", "Loss")
	if showSurrender {
		header += fmt.Sprintf("%9s", "Surr")
	}
	header += fmt.Sprintf("%10s%8s%10s", "Profit%", "RoR", "Drawdown")
	fmt.Println(dimStyle.Render(header))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("-", len(header)-2)))

	for _, r := range sorted {
		perHour := r.EVPerRound * float64(handsPerHour)
		row := fmt.Sprintf("  %-*s%10s%10s%13s%7.1f%%%7.1f%%%7.1f%%", nameWidth,
			r.Strategy,
			fmt.Sprintf("%d", r.TotalRounds),
			signedStyle(perHour, fmt.Sprintf("%+.2f", perHour)),
			signedStyle(-r.HouseEdge, fmt.Sprintf("%+.2f%%", r.HouseEdge)),
			r.AvgWinRate, r.AvgPushRate, r.AvgLossRate)
		if showSurrender {
			row += fmt.Sprintf("%8.1f%%", r.AvgSurrenderRate)
		}
		row += fmt.Sprintf("%9.1f%%%7.1f%%%9.1f%%",
			r.SuccessRate, r.RiskOfRuin, r.AvgMaxDrawdown)
		fmt.Println(row)

		if r.FailedSessions > 0 {
			fmt.Println(lossStyle.Render(fmt.Sprintf("  %-*s%d sessions failed", nameWidth, "", r.FailedSessions)))
		}
	}

	printRankings(sorted, handsPerHour)
}

func printRankings(sorted []simulator.AggregateResult, handsPerHour int) {
	if len(sorted) < 2 {
		return
	}

	byEdge := rankedBy(sorted, func(a, b simulator.AggregateResult) bool { return a.HouseEdge < b.HouseEdge })
	byVol := rankedBy(sorted, func(a, b simulator.AggregateResult) bool { return a.StdROI < b.StdROI })
	bySuccess := rankedBy(sorted, func(a, b simulator.AggregateResult) bool { return a.SuccessRate > b.SuccessRate })
	byDrawdown := rankedBy(sorted, func(a, b simulator.AggregateResult) bool { return a.AvgMaxDrawdown < b.AvgMaxDrawdown })
	byRuin := rankedBy(sorted, func(a, b simulator.AggregateResult) bool { return a.RiskOfRuin < b.RiskOfRuin })

	last := len(sorted) - 1
	fmt.Println()
	fmt.Println(headerStyle.Render("Rankings"))
	fmt.Printf("  Best $/hour:      %s (%+.2f)\n", sorted[0].Strategy, sorted[0].EVPerRound*float64(handsPerHour))
	fmt.Printf("  Worst $/hour:     %s (%+.2f)\n", sorted[last].Strategy, sorted[last].EVPerRound*float64(handsPerHour))
	fmt.Printf("  Lowest edge:      %s (%+.2f%%)\n", byEdge[0].Strategy, byEdge[0].HouseEdge)
	fmt.Printf("  Highest edge:     %s (%+.2f%%)\n", byEdge[last].Strategy, byEdge[last].HouseEdge)
	fmt.Printf("  Lowest variance:  %s (std %.2f%%)\n", byVol[0].Strategy, byVol[0].StdROI)
	fmt.Printf("  Highest variance: %s (std %.2f%%)\n", byVol[last].Strategy, byVol[last].StdROI)
	fmt.Printf("  Best profit%%:     %s (%.1f%%)\n", bySuccess[0].Strategy, bySuccess[0].SuccessRate)
	fmt.Printf("  Worst profit%%:    %s (%.1f%%)\n", bySuccess[last].Strategy, bySuccess[last].SuccessRate)
	fmt.Printf("  Lowest drawdown:  %s (%.1f%%)\n", byDrawdown[0].Strategy, byDrawdown[0].AvgMaxDrawdown)
	fmt.Printf("  Highest drawdown: %s (%.1f%%)\n", byDrawdown[last].Strategy, byDrawdown[last].AvgMaxDrawdown)
	fmt.Printf("  Lowest ruin:      %s (%.1f%%)\n", byRuin[0].Strategy, byRuin[0].RiskOfRuin)
	fmt.Printf("  Highest ruin:     %s (%.1f%%)\n", byRuin[last].Strategy, byRuin[last].RiskOfRuin)
	fmt.Println()
}

// rankedBy returns a copy of the results sorted by the given order
func rankedBy(results []simulator.AggregateResult, less func(a, b simulator.AggregateResult) bool) []simulator.AggregateResult {
	out := make([]simulator.AggregateResult, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
