// Package exit provides walk-away conditions for a session. An exit
// strategy watches the bankroll after every round and says when to leave
// the table.
package exit

// Strategy decides when a session should end. ShouldExit may be stateful;
// trailing strategies ratchet their thresholds as the bankroll moves.
type Strategy interface {
	ShouldExit(bankroll float64) bool
}

// DoubleUp leaves the table once the bankroll has doubled
type DoubleUp struct {
	target float64
}

// NewDoubleUp creates an exit at twice the starting bankroll
func NewDoubleUp(startingBankroll float64) *DoubleUp {
	return &DoubleUp{target: startingBankroll * 2}
}

func (d *DoubleUp) ShouldExit(bankroll float64) bool {
	return bankroll >= d.target
}

// Peak is a trailing stop. Every time the bankroll reaches the current
// target both the target and the loss stop are re-anchored above it, so
// profit keeps being chased while the downside stays a fixed distance
// behind the high-water mark.
type Peak struct {
	lockValue   float64
	maxDrawdown float64
	target      float64
	lossStop    float64
}

// NewPeak creates a trailing stop that locks lockPct of the starting
// bankroll per step and tolerates a lossPct drawdown.
func NewPeak(startingBankroll, lockPct, lossPct float64) *Peak {
	lock := startingBankroll * lockPct
	drawdown := startingBankroll * lossPct
	return &Peak{
		lockValue:   lock,
		maxDrawdown: drawdown,
		target:      startingBankroll + lock,
		lossStop:    startingBankroll - drawdown,
	}
}

func (p *Peak) ShouldExit(bankroll float64) bool {
	if bankroll >= p.target {
		p.target = bankroll + p.lockValue
		p.lossStop = bankroll - p.maxDrawdown
	} else if bankroll <= p.lossStop {
		return true
	}
	return false
}

// ProfitLock leaves at a hard profit ceiling and, once a profit target is
// reached, raises the loss stop to lock in half the profit made so far.
type ProfitLock struct {
	startingBankroll float64
	profitTarget     float64
	leaveTarget      float64
	lossStop         float64
}

// NewProfitLock creates a profit lock that starts protecting profit at
// lockPct above the starting bankroll and leaves outright at twice that.
func NewProfitLock(startingBankroll, lockPct, lossPct float64) *ProfitLock {
	lock := startingBankroll * lockPct
	return &ProfitLock{
		startingBankroll: startingBankroll,
		profitTarget:     startingBankroll + lock,
		leaveTarget:      startingBankroll + 2*lock,
		lossStop:         startingBankroll - startingBankroll*lossPct,
	}
}

func (p *ProfitLock) ShouldExit(bankroll float64) bool {
	if bankroll > p.leaveTarget {
		return true
	}
	if bankroll >= p.profitTarget {
		profit := bankroll - p.startingBankroll
		p.lossStop = p.startingBankroll + profit*0.5
		return false
	}
	return bankroll <= p.lossStop
}

// WinLossStop leaves at a fixed win target or a fixed loss floor
type WinLossStop struct {
	target   float64
	lossStop float64
}

// NewWinLossStop creates an exit at targetPct profit or when the bankroll
// falls to lossPct of its starting value.
func NewWinLossStop(startingBankroll, targetPct, lossPct float64) *WinLossStop {
	return &WinLossStop{
		target:   startingBankroll + startingBankroll*targetPct,
		lossStop: startingBankroll * lossPct,
	}
}

func (w *WinLossStop) ShouldExit(bankroll float64) bool {
	return bankroll >= w.target || bankroll <= w.lossStop
}
