package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/greerviau/blackjack/internal/strategy"
)

// ListCmd prints the preset strategy catalogue with the indices the
// simulate command accepts.
type ListCmd struct {
	Exit bool `help:"Include exit strategy combinations"`
}

func (c *ListCmd) Run() error {
	header := lipgloss.NewStyle().Bold(true)
	index := lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

	fmt.Println(header.Render("Available strategies"))
	for i, name := range strategy.PresetNames(c.Exit) {
		fmt.Printf("  %s %s\n", index.Render(fmt.Sprintf("%2d:", i)), name)
	}
	return nil
}
