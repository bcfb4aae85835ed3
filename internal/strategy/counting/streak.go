package counting

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// WinStreak signals the number of consecutive winning hands. A loss
// resets the streak; a push leaves it unchanged.
type WinStreak struct {
	streak int
}

// NewWinStreak creates a win streak counter
func NewWinStreak() *WinStreak {
	return &WinStreak{}
}

func (w *WinStreak) ObserveCard(deck.Card) {}

func (w *WinStreak) EndHand(result game.Outcome) {
	switch {
	case result.IsWin():
		w.streak++
	case result.IsLoss():
		w.streak = 0
	}
}

func (w *WinStreak) EndRound()         {}
func (w *WinStreak) Reset()            { w.streak = 0 }
func (w *WinStreak) RunningCount() int { return w.streak }
func (w *WinStreak) TrueCount() int    { return w.streak }

// LossStreak signals the number of consecutive losing hands, the input
// for Martingale-style progressions. A win resets the streak; a push
// leaves it unchanged.
type LossStreak struct {
	streak int
}

// NewLossStreak creates a loss streak counter
func NewLossStreak() *LossStreak {
	return &LossStreak{}
}

func (l *LossStreak) ObserveCard(deck.Card) {}

func (l *LossStreak) EndHand(result game.Outcome) {
	switch {
	case result.IsWin():
		l.streak = 0
	case result.IsLoss():
		l.streak++
	}
}

func (l *LossStreak) EndRound()         {}
func (l *LossStreak) Reset()            { l.streak = 0 }
func (l *LossStreak) RunningCount() int { return l.streak }
func (l *LossStreak) TrueCount() int    { return l.streak }
