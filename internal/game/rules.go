package game

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned when a table rule configuration is unusable.
var ErrInvalidRules = errors.New("game: invalid table rules")

// Rules holds the table configuration for a game. Immutable once the game
// is constructed.
type Rules struct {
	Decks           int
	MinBet          float64
	MaxBet          float64
	BlackjackPayout float64 // 1.5 for 3:2, 1.2 for 6:5
	Penetration     float64 // fraction of the shoe dealt before reshuffle
	H17             bool    // dealer hits soft 17
	DAS             bool    // double after split
	LateSurrender   bool
	MaxSplits       int
	HitSplitAces    bool
	ResplitAces     bool
}

// DefaultRules returns a common 8-deck H17 table
func DefaultRules() Rules {
	return Rules{
		Decks:           8,
		MinBet:          10,
		MaxBet:          1000,
		BlackjackPayout: 1.5,
		Penetration:     0.75,
		H17:             true,
		DAS:             true,
		LateSurrender:   false,
		MaxSplits:       3,
		HitSplitAces:    false,
		ResplitAces:     true,
	}
}

// Validate reports whether the rules describe a playable table
func (r Rules) Validate() error {
	if r.Decks <= 0 {
		return fmt.Errorf("%w: deck count must be positive, got %d", ErrInvalidRules, r.Decks)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("%w: minimum bet must be positive, got %v", ErrInvalidRules, r.MinBet)
	}
	if r.MaxBet < r.MinBet {
		return fmt.Errorf("%w: maximum bet %v below minimum bet %v", ErrInvalidRules, r.MaxBet, r.MinBet)
	}
	if r.BlackjackPayout <= 0 {
		return fmt.Errorf("%w: blackjack payout must be positive, got %v", ErrInvalidRules, r.BlackjackPayout)
	}
	if r.Penetration <= 0 || r.Penetration > 1 {
		return fmt.Errorf("%w: penetration must be in (0, 1], got %v", ErrInvalidRules, r.Penetration)
	}
	if r.MaxSplits < 0 {
		return fmt.Errorf("%w: max splits must be non-negative, got %d", ErrInvalidRules, r.MaxSplits)
	}
	return nil
}

// TotalCards returns the number of cards in a fresh shoe
func (r Rules) TotalCards() int {
	return r.Decks * 52
}

// ReshufflePoint returns the shoe size at or below which the shoe is
// replaced before the next round.
func (r Rules) ReshufflePoint() int {
	return int(float64(r.TotalCards()) * (1 - r.Penetration))
}
