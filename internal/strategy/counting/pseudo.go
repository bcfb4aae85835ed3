package counting

import (
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

// Pseudo is a round-level approximation of counting. Instead of scoring
// every card it classifies each round as favorable or unfavorable by the
// ratio of low to high cards that came out, and accumulates that ratio.
type Pseudo struct {
	nDecks       int
	cardsSeen    int
	runningCount int

	roundLow  int
	roundHigh int
}

// NewPseudo creates a pseudo counter for a shoe of nDecks decks
func NewPseudo(nDecks int) *Pseudo {
	return &Pseudo{nDecks: nDecks}
}

func (p *Pseudo) ObserveCard(c deck.Card) {
	switch {
	case isLow(c):
		p.roundLow++
	case isHigh(c):
		p.roundHigh++
	}
	p.cardsSeen++
}

func (p *Pseudo) EndHand(game.Outcome) {}

// EndRound folds the round's card composition into the running count.
// A lopsided round moves the count by the low/high ratio, so a flood of
// low cards counts for more than a single-card surplus.
func (p *Pseudo) EndRound() {
	low, high := p.roundLow, p.roundHigh
	p.roundLow, p.roundHigh = 0, 0

	switch {
	case low > high:
		if high == 0 {
			p.runningCount += low / 2
		} else {
			p.runningCount += low / high
		}
	case high > low:
		if low == 0 {
			p.runningCount -= high / 2
		} else {
			p.runningCount -= high / low
		}
	}
}

func (p *Pseudo) Reset() {
	p.cardsSeen = 0
	p.runningCount = 0
	p.roundLow = 0
	p.roundHigh = 0
}

func (p *Pseudo) RunningCount() int {
	return p.runningCount
}

func (p *Pseudo) TrueCount() int {
	return trueCount(p.runningCount, p.nDecks, p.cardsSeen)
}
