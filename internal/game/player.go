package game

import "github.com/greerviau/blackjack/internal/deck"

// Player is the decision protocol the game engine drives. Implementations
// compose the four strategy roles (playing, counting, bet sizing, exit) or
// forward the decisions to a human.
type Player interface {
	// DecideBet returns the wager for the next round. The engine clamps
	// the returned amount to the table limits and to the bankroll.
	DecideBet() float64

	// DecideAction chooses one of the legal actions for the current hand.
	// Returning an action outside the legal set is a contract violation
	// and fails the round.
	DecideAction(hand *Hand, dealerUpcard deck.Card, legal []Action) Action

	// ObserveCard is called for every card dealt face-up, in deal order
	ObserveCard(c deck.Card)

	// OnHandEnd is called with the final classification of each hand
	OnHandEnd(result Outcome)

	// OnRoundEnd is called once after every round settles
	OnRoundEnd()

	// OnShoeReset is called whenever the shoe is replaced
	OnShoeReset()

	// ShouldContinue reports whether another round should be played
	ShouldContinue(bankroll float64) bool
}
