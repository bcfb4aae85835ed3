package game

import (
	"strings"

	"github.com/greerviau/blackjack/internal/deck"
)

// Hand is an ordered set of cards with the wager riding on it.
// Hands produced by a split carry FromSplit from creation; Surrendered is
// set once and is terminal. Everything else is derived from the cards.
type Hand struct {
	Cards       []deck.Card
	Wager       float64
	FromSplit   bool
	Surrendered bool
}

// NewHand creates an empty hand with the given wager
func NewHand(wager float64) *Hand {
	return &Hand{Wager: wager}
}

// NewSplitHand creates an empty hand produced by splitting, carrying the
// original hand's wager.
func NewSplitHand(wager float64) *Hand {
	return &Hand{Wager: wager, FromSplit: true}
}

// Add appends a card to the hand
func (h *Hand) Add(c deck.Card) {
	h.Cards = append(h.Cards, c)
}

// Total returns the point value of the hand. Aces count 11 and are demoted
// to 1 one at a time while the total exceeds 21.
func (h *Hand) Total() int {
	total, _ := h.value()
	return total
}

// IsSoft returns true if an Ace is still counted as 11 after reduction
func (h *Hand) IsSoft() bool {
	total, aces := h.value()
	return aces > 0 && total <= 21
}

// IsBusted returns true if the hand total exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Total() > 21
}

// IsPair returns true for exactly two cards of equal rank.
// Rank, not point value: a King and a Queen are not a pair.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// IsBlackjack returns true for a natural: two cards totalling 21 on a hand
// that was not created by a split.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total() == 21 && !h.FromSplit
}

// value computes the reduced total and the number of aces still worth 11
func (h *Hand) value() (int, int) {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.Points()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// String returns the hand's cards joined together (e.g., "A♠K♥")
func (h *Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}
