package counting

import (
	"testing"

	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
)

func card(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

func TestHiLoRunningCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []deck.Rank
		count int
	}{
		{"low cards add", []deck.Rank{deck.Two, deck.Three, deck.Six}, 3},
		{"high cards subtract", []deck.Rank{deck.Ten, deck.King, deck.Ace}, -3},
		{"neutral cards ignored", []deck.Rank{deck.Seven, deck.Eight, deck.Nine}, 0},
		{"mixed", []deck.Rank{deck.Two, deck.Ace, deck.Five, deck.Queen, deck.Eight}, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewHiLo(1)
			for _, r := range tt.ranks {
				h.ObserveCard(card(r))
			}
			assert.Equal(t, tt.count, h.RunningCount())
		})
	}
}

func TestHiLoTrueCount(t *testing.T) {
	t.Parallel()
	// Six low cards out of a two deck shoe: running +6, about 1.9 decks
	// remaining, true count floor(6/1.88...) = 3
	h := NewHiLo(2)
	for i := 0; i < 6; i++ {
		h.ObserveCard(card(deck.Four))
	}
	assert.Equal(t, 6, h.RunningCount())
	assert.Equal(t, 3, h.TrueCount())
}

func TestHiLoTrueCountFloorsNegative(t *testing.T) {
	t.Parallel()
	// Running -3 over 1.94 decks remaining is -1.54, floored to -2
	h := NewHiLo(2)
	for _, r := range []deck.Rank{deck.Ten, deck.Jack, deck.Ace} {
		h.ObserveCard(card(r))
	}
	assert.Equal(t, -2, h.TrueCount())
}

func TestHiLoDecksRemainingFloor(t *testing.T) {
	t.Parallel()
	// Deep in a single deck the divisor bottoms out at half a deck
	h := NewHiLo(1)
	for i := 0; i < 30; i++ {
		h.ObserveCard(card(deck.Eight))
	}
	h.runningCount = 2
	assert.Equal(t, 4, h.TrueCount())
}

func TestHiLoReset(t *testing.T) {
	t.Parallel()
	h := NewHiLo(1)
	h.ObserveCard(card(deck.Two))
	h.ObserveCard(card(deck.Three))
	h.Reset()
	assert.Equal(t, 0, h.RunningCount())
	assert.Equal(t, 0, h.TrueCount())
}

func TestPseudoRoundRatio(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []deck.Rank
		count int
	}{
		{"low heavy round", []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Ten}, 3},
		{"high heavy round", []deck.Rank{deck.King, deck.Queen, deck.Ten, deck.Five}, -3},
		{"all low halves", []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five}, 2},
		{"all high halves", []deck.Rank{deck.Ten, deck.Jack, deck.Queen, deck.King}, -2},
		{"balanced round", []deck.Rank{deck.Two, deck.Ten, deck.Seven}, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPseudo(8)
			for _, r := range tt.ranks {
				p.ObserveCard(card(r))
			}
			assert.Equal(t, 0, p.RunningCount(), "count must not move before the round ends")
			p.EndRound()
			assert.Equal(t, tt.count, p.RunningCount())
		})
	}
}

func TestPseudoAccumulatesAcrossRounds(t *testing.T) {
	t.Parallel()
	p := NewPseudo(8)
	for round := 0; round < 3; round++ {
		p.ObserveCard(card(deck.Two))
		p.ObserveCard(card(deck.Three))
		p.ObserveCard(card(deck.Ten))
		p.EndRound()
	}
	assert.Equal(t, 6, p.RunningCount())

	p.Reset()
	assert.Equal(t, 0, p.RunningCount())
}

func TestWinStreak(t *testing.T) {
	t.Parallel()
	w := NewWinStreak()
	w.EndHand(game.Win)
	w.EndHand(game.Blackjack)
	w.EndHand(game.DealerBust)
	assert.Equal(t, 3, w.TrueCount())

	// A push leaves the streak alone
	w.EndHand(game.Push)
	assert.Equal(t, 3, w.TrueCount())

	w.EndHand(game.Loss)
	assert.Equal(t, 0, w.TrueCount())
}

func TestLossStreak(t *testing.T) {
	t.Parallel()
	l := NewLossStreak()
	l.EndHand(game.Loss)
	l.EndHand(game.Bust)
	l.EndHand(game.DealerBlackjack)
	l.EndHand(game.Surrender)
	assert.Equal(t, 4, l.TrueCount())

	l.EndHand(game.Push)
	assert.Equal(t, 4, l.TrueCount())

	l.EndHand(game.Win)
	assert.Equal(t, 0, l.TrueCount())
}

func TestNoneIsAlwaysZero(t *testing.T) {
	t.Parallel()
	n := NewNone()
	n.ObserveCard(card(deck.Two))
	n.EndHand(game.Win)
	n.EndRound()
	assert.Equal(t, 0, n.RunningCount())
	assert.Equal(t, 0, n.TrueCount())
}
