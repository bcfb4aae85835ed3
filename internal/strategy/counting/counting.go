// Package counting provides the card counting systems a composed strategy
// can use to derive a bet signal. A counter observes every revealed card and
// condenses what it has seen into a single integer.
package counting

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// Counter condenses observed cards into a bet signal. TrueCount is the
// signal consumed by bet sizing; what it means depends on the system
// (a deck-adjusted count, a streak length, or always zero).
type Counter interface {
	// ObserveCard updates the count with a revealed card
	ObserveCard(c deck.Card)
	// EndHand is called with the final classification of each player hand
	EndHand(result game.Outcome)
	// EndRound is called after every hand in a round has settled
	EndRound()
	// Reset clears all state when the shoe is replaced
	Reset()
	// RunningCount returns the raw unadjusted count
	RunningCount() int
	// TrueCount returns the bet signal
	TrueCount() int
}

// isLow reports whether a card helps the dealer when it leaves the shoe
func isLow(c deck.Card) bool {
	p := c.Points()
	return p >= 2 && p <= 6
}

// isHigh reports whether a card helps the player when it stays in the shoe
func isHigh(c deck.Card) bool {
	return c.Points() >= 10
}
