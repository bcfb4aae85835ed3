package game

// Outcome classifies how a single hand ended.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Push
	Blackjack
	DealerBlackjack
	DealerBust
	Bust
	Surrender
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Push:
		return "push"
	case Blackjack:
		return "blackjack"
	case DealerBlackjack:
		return "dealer_blackjack"
	case DealerBust:
		return "dealer_bust"
	case Bust:
		return "bust"
	case Surrender:
		return "surrender"
	default:
		return "?"
	}
}

// IsWin returns true if the outcome is a player win
func (o Outcome) IsWin() bool {
	return o == Win || o == Blackjack || o == DealerBust
}

// IsLoss returns true if the outcome is a player loss.
// A push is neither a win nor a loss.
func (o Outcome) IsLoss() bool {
	return o == Loss || o == DealerBlackjack || o == Bust || o == Surrender
}
