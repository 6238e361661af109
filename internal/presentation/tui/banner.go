package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fasim banner to w, coloured when w is a capable terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Gradient from teal to indigo
	lines := []struct{ text, color string }{
		{"   __            _           ", "#2dd4bf"},
		{"  / _| __ _ ___(_)_ __ ___  ", "#38bdf8"},
		{" | |_ / _` / __| | '_ ` _ \\ ", "#60a5fa"},
		{" |  _| (_| \\__ \\ | | | | | |", "#818cf8"},
		{" |_|  \\__,_|___/_|_| |_| |_|", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version = strings.TrimSpace(version); version != "" {
		fmt.Fprintln(w, out.String("  finite automaton simulator "+version).Faint())
	}
	fmt.Fprintln(w)
}
