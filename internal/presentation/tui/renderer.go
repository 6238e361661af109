package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With auto set, the style follows the terminal background; otherwise a
// plain style suitable for pipes and files is used.
func NewRenderer(auto bool) (func(string) (string, error), error) {
	opt := glamour.WithStandardStyle("notty")
	if auto {
		opt = glamour.WithAutoStyle() // Automatically detect light/dark background
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// TableMarkdown describes a transition table as a markdown document,
// one row per transition, sorted by state then input.
func TableMarkdown(table *domain.Table) string {
	var sb strings.Builder
	sb.WriteString("# Finite Automaton\n\n")
	fmt.Fprintf(&sb, "%d states.\n\n", table.Len())
	sb.WriteString("| State | Input | Destination |\n")
	sb.WriteString("|---|---|---|\n")
	for _, state := range table.States() {
		transitions := table.Transitions(state)
		inputs := table.Inputs(state)
		if len(inputs) == 0 {
			fmt.Fprintf(&sb, "| %s | | |\n", escapeCell(state))
			continue
		}
		for _, in := range inputs {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(state), escapeCell(in), escapeCell(transitions[in]))
		}
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
