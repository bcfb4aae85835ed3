package strategy

import (
	"fmt"
	"strings"

	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/strategy/betsize"
	"github.com/greerviau/blackjack/internal/strategy/counting"
	"github.com/greerviau/blackjack/internal/strategy/exit"
	"github.com/greerviau/blackjack/internal/strategy/playing"
)

// baseNames are the preset combinations without exit strategies
var baseNames = []string{
	"Basic + Flat",
	"Basic + Martingale",
	"Basic + Win 1-2-4",
	"Basic + Hi-Lo + Linear",
	"Basic + Hi-Lo + MinMax",
	"Basic + Pseudo + Linear",
	"Basic + Pseudo + MinMax",
}

// exitSuffixes are appended to every base name when exits are requested
var exitSuffixes = []string{
	" + Exit:Double",
	" + Exit:Peak",
	" + Exit:WinLossStop",
	" + Exit:ProfitLock",
}

// PresetNames returns the catalogue of preset strategy names. With
// includeExit every base strategy is crossed with every exit strategy.
func PresetNames(includeExit bool) []string {
	if !includeExit {
		return append([]string(nil), baseNames...)
	}
	names := make([]string, 0, len(baseNames)*len(exitSuffixes))
	for _, base := range baseNames {
		for _, suffix := range exitSuffixes {
			names = append(names, base+suffix)
		}
	}
	return names
}

// NewPreset builds a composite strategy from a preset name. Names are
// " + " separated component lists; unrecognized components are an error.
func NewPreset(name string, bankroll float64, rules game.Rules) (*Composite, error) {
	var (
		counter      counting.Counter = counting.NewNone()
		spread       *betsize.Spread
		exitStrategy exit.Strategy
	)

	for _, part := range strings.Split(name, " + ") {
		switch part {
		case "Basic", "Flat", "Linear", "MinMax":
			// Playing strategy and bare spread names are handled below
		case "Hi-Lo":
			counter = counting.NewHiLo(rules.Decks)
		case "Pseudo":
			counter = counting.NewPseudo(rules.Decks)
		case "Win 1-2-4":
			counter = counting.NewWinStreak()
		case "Martingale":
			counter = counting.NewLossStreak()
		case "Exit:Double":
			exitStrategy = exit.NewDoubleUp(bankroll)
		case "Exit:Peak":
			exitStrategy = exit.NewPeak(bankroll, 0.30, 0.40)
		case "Exit:WinLossStop":
			exitStrategy = exit.NewWinLossStop(bankroll, 0.30, 0.40)
		case "Exit:ProfitLock":
			exitStrategy = exit.NewProfitLock(bankroll, 0.30, 0.40)
		default:
			return nil, fmt.Errorf("strategy: unknown preset component %q in %q", part, name)
		}

		switch part {
		case "Win 1-2-4":
			// A 1-2-4 ladder that restarts after every third straight win.
			// Bets never leave the ladder, so max defaults to the minimum.
			spread = betsize.NewSpread(map[int]float64{
				0: rules.MinBet,
				1: rules.MinBet * 2,
				2: rules.MinBet * 4,
				3: rules.MinBet,
				4: rules.MinBet * 2,
				5: rules.MinBet * 4,
				6: rules.MinBet,
				7: rules.MinBet * 2,
				8: rules.MinBet * 4,
			}, rules.MinBet, rules.MinBet)
		case "Martingale":
			spread = betsize.NewSpread(map[int]float64{
				0: rules.MinBet,
				1: rules.MinBet * 2,
				2: rules.MinBet * 4,
				3: rules.MinBet * 8,
				4: rules.MinBet * 16,
				5: rules.MinBet * 32,
			}, rules.MinBet, rules.MaxBet)
		case "Linear":
			spread = betsize.NewSpread(map[int]float64{
				0: rules.MinBet,
				1: rules.MaxBet * 0.2,
				2: rules.MaxBet * 0.4,
				3: rules.MaxBet * 0.6,
				4: rules.MaxBet * 0.8,
				5: rules.MaxBet,
			}, rules.MinBet, rules.MaxBet)
		case "MinMax":
			spread = betsize.NewSpread(map[int]float64{
				0: rules.MinBet,
				3: rules.MaxBet,
			}, rules.MinBet, rules.MaxBet)
		}
	}

	if spread == nil {
		spread = betsize.Flat(rules.MinBet)
	}

	return New(name, playing.NewBasic(rules.H17), counter, spread, exitStrategy, rules.MinBet), nil
}
