// Package strategy composes independent playing, counting, bet sizing and
// exit components into a player the game engine can drive.
package strategy

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/strategy/betsize"
	"github.com/greerviau/blackjack/internal/strategy/counting"
	"github.com/greerviau/blackjack/internal/strategy/exit"
	"github.com/greerviau/blackjack/internal/strategy/playing"
)

// Composite wires four roles together: the playing strategy decides hand
// actions, the counter turns observed cards into a bet signal, the spread
// turns the signal into a wager, and the exit strategy decides when to
// leave. The exit strategy is optional.
type Composite struct {
	name    string
	playing playing.Strategy
	counter counting.Counter
	spread  *betsize.Spread
	exit    exit.Strategy

	minBet float64
}

var _ game.Player = (*Composite)(nil)

// New creates a composite strategy. A nil exit strategy plays until the
// engine's own stop conditions apply.
func New(name string, play playing.Strategy, counter counting.Counter, spread *betsize.Spread, exitStrategy exit.Strategy, minBet float64) *Composite {
	return &Composite{
		name:    name,
		playing: play,
		counter: counter,
		spread:  spread,
		exit:    exitStrategy,
		minBet:  minBet,
	}
}

// Name returns the display name of the strategy
func (c *Composite) Name() string {
	return c.name
}

// DecideBet sizes the next wager from the counter's current signal
func (c *Composite) DecideBet() float64 {
	return c.spread.Bet(c.counter.TrueCount())
}

// DecideAction delegates to the playing strategy. A single legal action
// needs no decision.
func (c *Composite) DecideAction(hand *game.Hand, dealerUpcard deck.Card, legal []game.Action) game.Action {
	if len(legal) == 1 {
		return legal[0]
	}
	return c.playing.Decide(hand, dealerUpcard, legal)
}

func (c *Composite) ObserveCard(card deck.Card) {
	c.counter.ObserveCard(card)
}

func (c *Composite) OnHandEnd(result game.Outcome) {
	c.counter.EndHand(result)
}

func (c *Composite) OnRoundEnd() {
	c.counter.EndRound()
}

func (c *Composite) OnShoeReset() {
	c.counter.Reset()
}

// ShouldContinue stops when the bankroll cannot cover the table minimum
// or when the exit strategy says to walk away.
func (c *Composite) ShouldContinue(bankroll float64) bool {
	if bankroll <= c.minBet {
		return false
	}
	if c.exit == nil {
		return true
	}
	return !c.exit.ShouldExit(bankroll)
}
