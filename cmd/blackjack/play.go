package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
	"github.com/greerviau/blackjack/internal/randutil"
)

// PlayCmd runs an interactive session against the dealer
type PlayCmd struct {
	Bankroll    float64 `short:"b" default:"500" help:"Starting bankroll"`
	Decks       int     `short:"d" default:"8" help:"Number of decks in the shoe"`
	TableMin    float64 `default:"25" help:"Table minimum bet"`
	TableMax    float64 `default:"500" help:"Table maximum bet"`
	Splits      int     `short:"s" default:"3" help:"Maximum number of splits"`
	S17         bool    `help:"Dealer stands on soft 17"`
	NoDas       bool    `help:"Disallow double after split"`
	NoSurrender bool    `help:"Disallow late surrender"`
	Seed        *int64  `help:"Random seed for reproducibility"`
	Debug       bool    `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	rules := game.DefaultRules()
	rules.Decks = c.Decks
	rules.MinBet = c.TableMin
	rules.MaxBet = c.TableMax
	rules.MaxSplits = c.Splits
	rules.H17 = !c.S17
	rules.DAS = !c.NoDas
	rules.LateSurrender = !c.NoSurrender

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	player := newHumanPlayer(os.Stdin, os.Stdout, rules)
	g, err := game.NewGame(rules, player, c.Bankroll, randutil.New(seed), logger)
	if err != nil {
		return err
	}
	player.attach(g)

	summary, err := g.Play(0)
	if err != nil {
		return err
	}

	player.printSummary(summary)
	return nil
}

// maxPromptRetries bounds invalid input before falling back to a safe
// default, so a closed or garbage stdin cannot spin forever.
const maxPromptRetries = 3

// humanPlayer prompts on the terminal for every decision
type humanPlayer struct {
	in    *bufio.Reader
	out   io.Writer
	rules game.Rules
	game  *game.Game

	red    lipgloss.Style
	black  lipgloss.Style
	notice lipgloss.Style
	dim    lipgloss.Style
}

func newHumanPlayer(in io.Reader, out io.Writer, rules game.Rules) *humanPlayer {
	return &humanPlayer{
		in:     bufio.NewReader(in),
		out:    out,
		rules:  rules,
		red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		black:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		notice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// attach gives the player a view of the table for prompts and summaries
func (h *humanPlayer) attach(g *game.Game) {
	h.game = g
}

func (h *humanPlayer) readLine() (string, bool) {
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (h *humanPlayer) card(c deck.Card) string {
	if c.IsRed() {
		return h.red.Render(c.String())
	}
	return h.black.Render(c.String())
}

func (h *humanPlayer) hand(hand *game.Hand) string {
	parts := make([]string, len(hand.Cards))
	for i, c := range hand.Cards {
		parts[i] = h.card(c)
	}
	return fmt.Sprintf("%s | %d", strings.Join(parts, " "), hand.Total())
}

func (h *humanPlayer) DecideBet() float64 {
	fmt.Fprintf(h.out, "\nBankroll: $%.2f\n", h.game.Bankroll())
	for attempt := 0; attempt < maxPromptRetries; attempt++ {
		fmt.Fprintf(h.out, "Enter your bet (default $%.0f): $", h.rules.MinBet)
		line, ok := h.readLine()
		if !ok || line == "" {
			return h.rules.MinBet
		}

		bet, err := strconv.ParseFloat(line, 64)
		switch {
		case err != nil:
			fmt.Fprintf(h.out, "  %q is not a valid number.\n", line)
		case bet > h.game.Bankroll():
			fmt.Fprintln(h.out, "  Not enough bankroll for that bet.")
		case bet < h.rules.MinBet:
			fmt.Fprintf(h.out, "  Bet must be at least $%.0f (table min).\n", h.rules.MinBet)
		case bet > h.rules.MaxBet:
			fmt.Fprintf(h.out, "  Bet cannot exceed $%.0f (table max).\n", h.rules.MaxBet)
		default:
			return bet
		}
	}
	fmt.Fprintf(h.out, "  Betting the table minimum ($%.0f).\n", h.rules.MinBet)
	return h.rules.MinBet
}

func (h *humanPlayer) DecideAction(hand *game.Hand, dealerUpcard deck.Card, legal []game.Action) game.Action {
	if len(legal) == 1 {
		return legal[0]
	}

	names := make([]string, len(legal))
	for i, a := range legal {
		names[i] = a.String()
	}
	choices := strings.Join(names, " / ")

	fmt.Fprintf(h.out, "\nDealer showing: %s\n", h.card(dealerUpcard))
	fmt.Fprintf(h.out, "Your hand: %s\n", h.hand(hand))

	for attempt := 0; attempt < maxPromptRetries; attempt++ {
		fmt.Fprintf(h.out, "Action [%s]: ", choices)
		line, ok := h.readLine()
		if !ok {
			break
		}
		if action, valid := game.ParseAction(strings.ToLower(line)); valid && contains(legal, action) {
			return action
		}
		fmt.Fprintf(h.out, "  %q is not valid. Choose from: %s\n", line, choices)
	}
	fmt.Fprintln(h.out, "  Standing.")
	return game.Stand
}

func contains(actions []game.Action, a game.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func (h *humanPlayer) ObserveCard(deck.Card) {}

func (h *humanPlayer) OnHandEnd(result game.Outcome) {
	messages := map[game.Outcome]string{
		game.DealerBust:      "Dealer busts - you win!",
		game.Blackjack:       "Blackjack! You win!",
		game.Win:             "You win!",
		game.Push:            "Push - it's a tie",
		game.DealerBlackjack: "Dealer blackjack - you lose",
		game.Bust:            "Busted - you lose",
		game.Loss:            "Dealer wins - you lose",
		game.Surrender:       "You surrendered half of your bet",
	}
	fmt.Fprintf(h.out, "\n%s\n", h.notice.Render(">>> "+messages[result]+" <<<"))
}

func (h *humanPlayer) OnRoundEnd() {
	fmt.Fprintln(h.out, h.dim.Render(strings.Repeat("-", 30)))
	fmt.Fprintf(h.out, "Dealer final hand: %s\n", h.hand(h.game.DealerHand()))
	fmt.Fprintln(h.out, "Your hands:")
	for _, hand := range h.game.Hands() {
		fmt.Fprintf(h.out, "  - %s\n", h.hand(hand))
	}
	fmt.Fprintln(h.out, h.dim.Render(strings.Repeat("-", 30)))
}

func (h *humanPlayer) OnShoeReset() {
	fmt.Fprintf(h.out, "\n%s\n", h.dim.Render("== Shuffling =="))
}

func (h *humanPlayer) ShouldContinue(bankroll float64) bool {
	if bankroll < h.rules.MinBet {
		fmt.Fprintln(h.out, "\nYou cannot cover the table minimum.")
		return false
	}
	fmt.Fprint(h.out, "\nPlay another round? (Y/n): ")
	line, ok := h.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

func (h *humanPlayer) printSummary(s game.Summary) {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, h.notice.Render("Session over"))
	fmt.Fprintf(h.out, "  Rounds played:  %d\n", s.RoundsPlayed)
	fmt.Fprintf(h.out, "  Final bankroll: $%.2f\n", s.FinalBankroll)
	fmt.Fprintf(h.out, "  Profit:         $%+.2f\n", s.Profit)
	fmt.Fprintf(h.out, "  Hands won:      %d of %d\n", s.HandsWon, s.HandsPlayed)
}
