// Package playing provides hand-play strategies: given a hand, the
// dealer's upcard and the legal actions, decide what to do.
package playing

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// Strategy decides how to play a hand. The returned action must be drawn
// from the legal set; the engine treats anything else as a hard fault.
type Strategy interface {
	Decide(hand *game.Hand, dealerUpcard deck.Card, legal []game.Action) game.Action
}
