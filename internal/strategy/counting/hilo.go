package counting

import (
	"math"

	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// HiLo implements the Hi-Lo counting system. Low cards (2-6) add one,
// high cards (10 through ace) subtract one, 7-9 are neutral.
type HiLo struct {
	nDecks       int
	cardsSeen    int
	runningCount int
}

// NewHiLo creates a Hi-Lo counter for a shoe of nDecks decks
func NewHiLo(nDecks int) *HiLo {
	return &HiLo{nDecks: nDecks}
}

func (h *HiLo) ObserveCard(c deck.Card) {
	switch {
	case isLow(c):
		h.runningCount++
	case isHigh(c):
		h.runningCount--
	}
	h.cardsSeen++
}

func (h *HiLo) EndHand(game.Outcome) {}
func (h *HiLo) EndRound()            {}

func (h *HiLo) Reset() {
	h.cardsSeen = 0
	h.runningCount = 0
}

func (h *HiLo) RunningCount() int {
	return h.runningCount
}

// TrueCount divides the running count by the number of decks remaining,
// floored at half a deck so the signal stays bounded late in the shoe.
func (h *HiLo) TrueCount() int {
	return trueCount(h.runningCount, h.nDecks, h.cardsSeen)
}

// trueCount normalizes a running count by the decks still in the shoe
func trueCount(running, nDecks, cardsSeen int) int {
	cardsRemaining := nDecks*52 - cardsSeen
	decksRemaining := math.Max(float64(cardsRemaining)/52, 0.5)
	return int(math.Floor(float64(running) / decksRemaining))
}
