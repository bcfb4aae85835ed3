package game

import "slices"

// Action is a play decision for a single hand.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	SurrenderHand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	case SurrenderHand:
		return "surrender"
	default:
		return "?"
	}
}

// ParseAction converts a lower-case action name to an Action.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "hit":
		return Hit, true
	case "stand":
		return Stand, true
	case "double":
		return Double, true
	case "split":
		return Split, true
	case "surrender":
		return SurrenderHand, true
	}
	return 0, false
}

func contains(actions []Action, a Action) bool {
	return slices.Contains(actions, a)
}
