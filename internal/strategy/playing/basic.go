package playing

import (
	"embed"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"

	"github.com/greerviau/blackjack/internal/deck"
	"github.com/greerviau/blackjack/internal/game"
)

//go:embed charts/*.csv
var chartFS embed.FS

// chart maps a hand key and a dealer upcard value to an action code.
// Hard and soft charts key on the hand total; the pair chart keys on the
// point value of the paired card.
type chart map[int]map[int]string

// Basic plays textbook basic strategy from pre-computed decision charts.
// Chart cells hold action codes with built-in fallbacks for when the
// preferred action is not legal: H, S, Dh (double else hit), Ds (double
// else stand), P (split else hit), Xh/Xs/Xp (surrender else hit, stand or
// split).
type Basic struct {
	hard  chart
	soft  chart
	pairs chart
}

// NewBasic loads the chart set for the table's dealer rule
func NewBasic(h17 bool) *Basic {
	variant := "s17"
	if h17 {
		variant = "h17"
	}
	return &Basic{
		hard:  mustLoadChart(fmt.Sprintf("charts/hard_%s.csv", variant)),
		soft:  mustLoadChart(fmt.Sprintf("charts/soft_%s.csv", variant)),
		pairs: mustLoadChart("charts/pairs.csv"),
	}
}

// mustLoadChart parses an embedded chart. The charts are compiled into
// the binary, so a parse failure is a build defect.
func mustLoadChart(name string) chart {
	f, err := chartFS.Open(name)
	if err != nil {
		panic(fmt.Sprintf("playing: open chart %s: %v", name, err))
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		panic(fmt.Sprintf("playing: parse chart %s: %v", name, err))
	}

	header := rows[0]
	upcards := make([]int, 0, len(header)-1)
	for _, cell := range header[1:] {
		v, err := strconv.Atoi(cell)
		if err != nil {
			panic(fmt.Sprintf("playing: chart %s: bad upcard %q", name, cell))
		}
		upcards = append(upcards, v)
	}

	c := make(chart, len(rows)-1)
	for _, row := range rows[1:] {
		key, err := strconv.Atoi(row[0])
		if err != nil {
			panic(fmt.Sprintf("playing: chart %s: bad key %q", name, row[0]))
		}
		c[key] = make(map[int]string, len(upcards))
		for i, code := range row[1:] {
			c[key][upcards[i]] = code
		}
	}
	return c
}

// Decide looks up the action code for the hand and translates it against
// the legal actions. Pairs take priority over soft and hard totals.
func (b *Basic) Decide(hand *game.Hand, dealerUpcard deck.Card, legal []game.Action) game.Action {
	upcard := dealerUpcard.Points()

	var code string
	switch {
	case hand.IsPair():
		code = b.pairs[hand.Cards[0].Points()][upcard]
	case hand.IsSoft():
		code = b.soft[hand.Total()][upcard]
	default:
		code = b.hard[hand.Total()][upcard]
	}

	return translate(code, legal)
}

// translate resolves an action code to a legal action. Unknown or missing
// codes stand, which is legal on every hand.
func translate(code string, legal []game.Action) game.Action {
	pick := func(preferred, fallback game.Action) game.Action {
		if slices.Contains(legal, preferred) {
			return preferred
		}
		return fallback
	}

	switch code {
	case "H":
		return game.Hit
	case "S":
		return game.Stand
	case "Dh":
		return pick(game.Double, game.Hit)
	case "Ds":
		return pick(game.Double, game.Stand)
	case "P":
		return pick(game.Split, game.Hit)
	case "Xh":
		return pick(game.SurrenderHand, game.Hit)
	case "Xs":
		return pick(game.SurrenderHand, game.Stand)
	case "Xp":
		return pick(game.SurrenderHand, pick(game.Split, game.Hit))
	default:
		return game.Stand
	}
}
