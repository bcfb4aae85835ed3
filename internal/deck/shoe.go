package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when a draw is attempted on an exhausted shoe.
// With penetration-based reshuffling in place this is structurally
// unreachable, but a draw past the end must still be a detectable fault.
var ErrEmptyShoe = errors.New("deck: shoe is empty")

// Shoe holds one or more concatenated 52-card decks that are dealt from
// the top without reshuffling between rounds.
type Shoe struct {
	cards  []Card
	nDecks int
	rng    *rand.Rand
}

// NewShoe creates a shuffled shoe of nDecks standard decks.
// Immediately after construction the shoe holds exactly nDecks*52 cards.
func NewShoe(nDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:  make([]Card, 0, nDecks*52),
		nDecks: nDecks,
		rng:    rng,
	}
	for d := 0; d < nDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.shuffle()
	return s
}

// NewStacked builds a shoe holding exactly the given cards in draw order,
// for scripting deals in tests. A stacked shoe carries no RNG and is never
// shuffled.
func NewStacked(cards ...Card) *Shoe {
	s := &Shoe{
		cards:  make([]Card, len(cards)),
		nDecks: 1,
	}
	copy(s.cards, cards)
	return s
}

// shuffle randomizes the order of the remaining cards
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card of the shoe
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// NumDecks returns the number of decks the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.nDecks
}
