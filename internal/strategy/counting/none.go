package counting

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// None is the counter for strategies that do not count. Its signal is
// always zero, which bet sizing maps to the table minimum.
type None struct{}

// NewNone creates a counter that never counts
func NewNone() *None {
	return &None{}
}

func (n *None) ObserveCard(deck.Card)     {}
func (n *None) EndHand(game.Outcome)      {}
func (n *None) EndRound()                 {}
func (n *None) Reset()                    {}
func (n *None) RunningCount() int         { return 0 }
func (n *None) TrueCount() int            { return 0 }
