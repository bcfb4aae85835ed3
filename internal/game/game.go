package game

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/greerviau/blackjack/internal/deck"
)

// ErrIllegalAction is returned when a player chooses an action outside the
// legal set for the current hand. The engine never coerces it to a stand;
// automated strategies are expected to respect the legal-action set.
var ErrIllegalAction = errors.New("game: illegal action")

// Game drives rounds of blackjack for a single player against the dealer.
// It exclusively owns the shoe; no other component may draw from it.
type Game struct {
	rules  Rules
	player Player
	logger *log.Logger
	rng    *rand.Rand

	shoe     *deck.Shoe
	bankroll float64
	dealer   *Hand
	hands    []*Hand
	cur      int
}

// Option customises game construction
type Option func(*Game)

// WithShoe replaces the initial shoe, primarily to script deals in tests
func WithShoe(s *deck.Shoe) Option {
	return func(g *Game) {
		g.shoe = s
	}
}

// NewGame creates a game with the given table rules, player and bankroll.
// The RNG seeds the shoe shuffles and is owned by the game.
func NewGame(rules Rules, player Player, bankroll float64, rng *rand.Rand, logger *log.Logger, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		rules:    rules,
		player:   player,
		logger:   logger,
		rng:      rng,
		bankroll: bankroll,
		dealer:   NewHand(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.shoe == nil {
		g.shoe = deck.NewShoe(rules.Decks, rng)
	}
	return g, nil
}

// Rules returns the table rules
func (g *Game) Rules() Rules {
	return g.rules
}

// Bankroll returns the player's current bankroll
func (g *Game) Bankroll() float64 {
	return g.bankroll
}

// DealerUpcard returns the dealer's visible card
func (g *Game) DealerUpcard() deck.Card {
	return g.dealer.Cards[0]
}

// DealerHand returns the dealer's hand
func (g *Game) DealerHand() *Hand {
	return g.dealer
}

// Hands returns the player's hands for the most recent round
func (g *Game) Hands() []*Hand {
	return g.hands
}

// RoundOutcome summarises a single round. Wagered covers the initial bet
// plus every additional debit from doubles and splits; winnings are derived
// by callers from bankroll deltas.
type RoundOutcome struct {
	Wins       int
	Losses     int
	Pushes     int
	Surrenders int
	Wagered    float64
}

// hands counts every settled hand in the round
func (o RoundOutcome) hands() int {
	return o.Wins + o.Losses + o.Pushes + o.Surrenders
}

// ValidActions computes the legal actions for a hand given the number of
// splits already made this round. Priority order matters: a 21 and a
// no-hit split-ace hand suppress all later additions.
func (g *Game) ValidActions(hand *Hand, splitsMade int) []Action {
	if hand.Total() == 21 {
		return []Action{Stand}
	}

	isAce := hand.Cards[0].IsAce()
	isPair := hand.IsPair()
	canAffordExtraBet := g.bankroll >= hand.Wager
	canSplitMore := splitsMade < g.rules.MaxSplits

	// Split aces receive one card each unless the table allows hitting them
	if hand.FromSplit && isAce && !g.rules.HitSplitAces {
		actions := []Action{Stand}
		if isPair && canAffordExtraBet && canSplitMore && g.rules.ResplitAces {
			actions = append(actions, Split)
		}
		return actions
	}

	actions := []Action{Hit, Stand}

	// Double down on the first two cards with sufficient bankroll
	if len(hand.Cards) == 2 && canAffordExtraBet {
		if !hand.FromSplit || g.rules.DAS {
			actions = append(actions, Double)
		}
	}

	// Split pairs with bankroll and splits remaining
	if isPair && canAffordExtraBet && canSplitMore {
		if !isAce || !hand.FromSplit || g.rules.ResplitAces {
			actions = append(actions, Split)
		}
	}

	// Late surrender on the initial two cards only
	if len(hand.Cards) == 2 && !hand.FromSplit && g.rules.LateSurrender {
		actions = append(actions, SurrenderHand)
	}

	return actions
}

// dealTo draws the top card into the hand and reports it to the player's
// counting observer.
func (g *Game) dealTo(h *Hand) error {
	card, err := g.shoe.Draw()
	if err != nil {
		return err
	}
	h.Add(card)
	g.player.ObserveCard(card)
	return nil
}

// PlayRound plays a single round of blackjack: reshuffle check, bet, deal,
// player turns, dealer turn, settlement.
func (g *Game) PlayRound() (RoundOutcome, error) {
	var out RoundOutcome
	splitsMade := 0
	g.dealer = NewHand(0)

	// Replace the shoe once penetration is reached; the counting component
	// must restart with it.
	if g.shoe.Remaining() <= g.rules.ReshufflePoint() {
		g.shoe = deck.NewShoe(g.rules.Decks, g.rng)
		g.player.OnShoeReset()
		g.logger.Debug("shoe replaced", "cards", g.shoe.Remaining())
	}

	// Place the bet, clamped to the table limits and the bankroll
	bet := g.player.DecideBet()
	bet = math.Max(g.rules.MinBet, math.Min(bet, g.rules.MaxBet))
	bet = math.Min(bet, g.bankroll)
	g.bankroll -= bet
	out.Wagered += bet
	g.hands = []*Hand{NewHand(bet)}
	g.cur = 0

	// Deal two cards each, alternating player then dealer
	for i := 0; i < 2; i++ {
		if err := g.dealTo(g.hands[0]); err != nil {
			return out, err
		}
		if err := g.dealTo(g.dealer); err != nil {
			return out, err
		}
	}

	// Dealer blackjack settles immediately
	if g.dealer.IsBlackjack() {
		if g.hands[0].IsBlackjack() {
			g.bankroll += g.hands[0].Wager
			g.player.OnHandEnd(Push)
			out.Pushes = 1
			return out, nil
		}
		g.player.OnHandEnd(DealerBlackjack)
		out.Losses = 1
		return out, nil
	}

	// Player blackjack pays out and skips the turn phases
	if g.hands[0].IsBlackjack() {
		wager := g.hands[0].Wager
		g.bankroll += wager + wager*g.rules.BlackjackPayout
		g.player.OnHandEnd(Blackjack)
		out.Wins = 1
		return out, nil
	}

	// Player plays each hand; splits extend the list in place
	for {
		hand := g.hands[g.cur]

		for {
			legal := g.ValidActions(hand, splitsMade)
			action := g.player.DecideAction(hand, g.DealerUpcard(), legal)
			if !contains(legal, action) {
				return out, fmt.Errorf("%w: %s on %s (legal: %v)", ErrIllegalAction, action, hand, legal)
			}

			if action == Hit {
				if err := g.dealTo(hand); err != nil {
					return out, err
				}
				if hand.IsBusted() {
					g.player.OnHandEnd(Bust)
					break
				}
				continue
			}

			if action == Stand {
				break
			}

			if action == Double {
				extra := hand.Wager
				g.bankroll -= extra
				out.Wagered += extra
				hand.Wager += extra
				if err := g.dealTo(hand); err != nil {
					return out, err
				}
				if hand.IsBusted() {
					g.player.OnHandEnd(Bust)
				}
				// Exactly one card after a double, bust or not
				break
			}

			if action == Split {
				splitsMade++
				wager := hand.Wager
				g.bankroll -= wager
				out.Wagered += wager

				first := NewSplitHand(wager)
				first.Add(hand.Cards[0])
				if err := g.dealTo(first); err != nil {
					return out, err
				}

				second := NewSplitHand(wager)
				second.Add(hand.Cards[1])
				if err := g.dealTo(second); err != nil {
					return out, err
				}

				// The first new hand takes the cursor slot and keeps the
				// turn; the sibling is appended for later.
				g.hands[g.cur] = first
				g.hands = append(g.hands, second)
				hand = first
				continue
			}

			// Surrender forfeits half the wager and ends the hand
			hand.Surrendered = true
			g.bankroll += hand.Wager / 2
			g.player.OnHandEnd(Surrender)
			break
		}

		if g.cur+1 >= len(g.hands) {
			break
		}
		g.cur++
	}

	// Dealer draws only if a player hand can still win
	hasLiveHand := false
	for _, h := range g.hands {
		if !h.IsBusted() {
			hasLiveHand = true
			break
		}
	}
	if hasLiveHand {
		if err := g.dealerPlay(); err != nil {
			return out, err
		}
	}

	// Settlement
	dealerBusted := g.dealer.IsBusted()
	dealerValue := g.dealer.Total()

	for _, hand := range g.hands {
		switch {
		case hand.Surrendered:
			out.Surrenders++
		case hand.IsBusted():
			out.Losses++
		case dealerBusted:
			g.bankroll += hand.Wager * 2
			g.player.OnHandEnd(DealerBust)
			out.Wins++
		case hand.Total() > dealerValue:
			g.bankroll += hand.Wager * 2
			g.player.OnHandEnd(Win)
			out.Wins++
		case hand.Total() == dealerValue:
			g.bankroll += hand.Wager
			g.player.OnHandEnd(Push)
			out.Pushes++
		default:
			g.player.OnHandEnd(Loss)
			out.Losses++
		}
	}

	return out, nil
}

// dealerPlay draws until the dealer reaches 17, hitting soft 17 when the
// table plays H17.
func (g *Game) dealerPlay() error {
	for {
		value := g.dealer.Total()
		if value < 17 || (g.rules.H17 && value == 17 && g.dealer.IsSoft()) {
			if err := g.dealTo(g.dealer); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

// Summary holds the statistics for a completed session
type Summary struct {
	StartingBankroll float64
	FinalBankroll    float64
	RoundsPlayed     int
	TotalWagered     float64
	Profit           float64
	PeakBankroll     float64
	TroughBankroll   float64
	HandsPlayed      int
	HandsWon         int
	HandsLost        int
	HandsPushed      int
	HandsSurrendered int
	WinRate          float64
	MaxDrawdown      float64
}

// Play runs rounds until maxRounds is reached (0 means unlimited), the
// player's continuation logic stops, or the bankroll drops below the table
// minimum. A round error aborts the session and is returned with the
// summary accumulated so far.
func (g *Game) Play(maxRounds int) (Summary, error) {
	s := Summary{
		StartingBankroll: g.bankroll,
		PeakBankroll:     g.bankroll,
		TroughBankroll:   g.bankroll,
	}

	for {
		if maxRounds > 0 && s.RoundsPlayed >= maxRounds {
			break
		}

		out, err := g.PlayRound()
		if err != nil {
			g.finishSummary(&s)
			return s, err
		}
		g.player.OnRoundEnd()

		s.RoundsPlayed++
		s.HandsPlayed += out.hands()
		s.HandsWon += out.Wins
		s.HandsLost += out.Losses
		s.HandsPushed += out.Pushes
		s.HandsSurrendered += out.Surrenders
		s.TotalWagered += out.Wagered

		s.PeakBankroll = math.Max(s.PeakBankroll, g.bankroll)
		s.TroughBankroll = math.Min(s.TroughBankroll, g.bankroll)

		if !g.player.ShouldContinue(g.bankroll) || g.bankroll < g.rules.MinBet {
			break
		}
	}

	g.finishSummary(&s)
	return s, nil
}

func (g *Game) finishSummary(s *Summary) {
	s.FinalBankroll = g.bankroll
	s.Profit = g.bankroll - s.StartingBankroll

	// Drawdown is measured from the session peak; flat or losing sessions
	// that never rose above the start report zero.
	if s.PeakBankroll > s.StartingBankroll && s.PeakBankroll > 0 {
		s.MaxDrawdown = (s.PeakBankroll - s.FinalBankroll) / s.PeakBankroll * 100
	}

	if s.HandsPlayed > 0 {
		s.WinRate = float64(s.HandsWon) / float64(s.HandsPlayed) * 100
	}
}
