package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slotguard/slotguard-go"
)

var (
	styleBold = lipgloss.NewStyle().Bold(true)
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func renderCompatible(contract string) string {
	return fmt.Sprintf("%s %s", styleOK.Render("ok"), displayName(contract))
}

// renderIncompatible formats the aggregate error one unsafe change per line,
// so every hazard can be fixed in a single pass.
func renderIncompatible(contract string, err *slotguard.CompatibilityError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: new storage layout is incompatible\n", styleBad.Render("unsafe"), displayName(contract))
	for _, c := range err.Changes {
		fmt.Fprintf(&b, "  %s: %s of %s\n", c.Location, c.Action, styleBold.Render(c.Label))
	}
	return b.String()
}

func displayName(contract string) string {
	if contract == "" {
		return "(snapshot)"
	}
	return contract
}
