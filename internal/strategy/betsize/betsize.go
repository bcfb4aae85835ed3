// Package betsize maps a counter's signal to a wager through a sparse
// spread table.
package betsize

// Spread maps bet signals to wagers. Signals without an explicit entry
// default to the minimum bet when the signal is zero or negative and to
// the maximum bet when it is positive, so a sparse table only has to name
// the rungs it cares about.
type Spread struct {
	spread map[int]float64
	minBet float64
	maxBet float64
}

// NewSpread creates a spread with the given table and default bets
func NewSpread(spread map[int]float64, minBet, maxBet float64) *Spread {
	return &Spread{spread: spread, minBet: minBet, maxBet: maxBet}
}

// Flat creates a spread that always bets the same amount
func Flat(bet float64) *Spread {
	return &Spread{minBet: bet, maxBet: bet}
}

// Bet returns the wager for the given signal
func (s *Spread) Bet(signal int) float64 {
	if len(s.spread) == 0 {
		return s.minBet
	}
	if bet, ok := s.spread[signal]; ok {
		return bet
	}
	if signal <= 0 {
		return s.minBet
	}
	return s.maxBet
}
