package game

import (
	"testing"

	"github.com/greerviau/blackjack/internal/deck"
)

func cards(ranks ...deck.Rank) []deck.Card {
	out := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		out[i] = deck.NewCard(deck.Suit(i%4), r)
	}
	return out
}

func handOf(ranks ...deck.Rank) *Hand {
	h := NewHand(10)
	for _, c := range cards(ranks...) {
		h.Add(c)
	}
	return h
}

func TestHandTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []deck.Rank
		total int
		soft  bool
	}{
		{"hard total", []deck.Rank{deck.Ten, deck.Seven}, 17, false},
		{"soft seventeen", []deck.Rank{deck.Ace, deck.Six}, 17, true},
		{"ace demoted", []deck.Rank{deck.Ace, deck.Six, deck.Ten}, 17, false},
		{"two aces", []deck.Rank{deck.Ace, deck.Ace}, 12, true},
		{"four aces reduce to fourteen", []deck.Rank{deck.Ace, deck.Ace, deck.Ace, deck.Ace}, 14, true},
		{"all aces stay soft below bust", []deck.Rank{deck.Ace, deck.Ace, deck.Ace}, 13, true},
		{"hard bust", []deck.Rank{deck.Ten, deck.Nine, deck.Five}, 24, false},
		{"blackjack total", []deck.Rank{deck.Ace, deck.King}, 21, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := handOf(tt.ranks...)
			if got := h.Total(); got != tt.total {
				t.Errorf("Total() = %d, want %d", got, tt.total)
			}
			if got := h.IsSoft(); got != tt.soft {
				t.Errorf("IsSoft() = %v, want %v", got, tt.soft)
			}
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	t.Parallel()
	if !handOf(deck.Ace, deck.King).IsBlackjack() {
		t.Error("A,K should be a blackjack")
	}
	if handOf(deck.Seven, deck.Seven, deck.Seven).IsBlackjack() {
		t.Error("a three-card 21 is not a blackjack")
	}

	// A split hand reaching 21 on two cards is never a blackjack
	split := NewSplitHand(10)
	split.Add(deck.NewCard(deck.Spades, deck.Ace))
	split.Add(deck.NewCard(deck.Hearts, deck.King))
	if split.IsBlackjack() {
		t.Error("a split hand cannot be a blackjack")
	}
	if split.Total() != 21 {
		t.Errorf("split hand total = %d, want 21", split.Total())
	}
}

func TestHandIsPair(t *testing.T) {
	t.Parallel()
	if !handOf(deck.Eight, deck.Eight).IsPair() {
		t.Error("8,8 should be a pair")
	}
	// Equal point value is not enough, ranks must match
	if handOf(deck.King, deck.Queen).IsPair() {
		t.Error("K,Q is not a pair")
	}
	if handOf(deck.Eight, deck.Eight, deck.Eight).IsPair() {
		t.Error("three cards are never a pair")
	}
}

func TestHandIsBusted(t *testing.T) {
	t.Parallel()
	if handOf(deck.Ten, deck.Ten).IsBusted() {
		t.Error("20 is not a bust")
	}
	if !handOf(deck.Ten, deck.Nine, deck.Five).IsBusted() {
		t.Error("24 is a bust")
	}
	if handOf(deck.Ace, deck.Ace, deck.Nine).IsBusted() {
		t.Error("A,A,9 reduces to 21, not a bust")
	}
}
