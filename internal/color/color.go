// Package color provides color detection and theming for terminal output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// colorOff lists environment settings that turn styling off. NO_COLOR
// counts when set at all, see https://no-color.org.
var colorOff = []func() bool{
	func() bool {
		_, ok := os.LookupEnv("NO_COLOR")

		return ok
	},
	func() bool { return os.Getenv("CLICOLOR") == "0" },
	func() bool { return os.Getenv("TERM") == "dumb" },
}

// Profile reports whether styled output is wanted. noColorFlag is the
// --no-color flag or host.no_color.
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	for _, off := range colorOff {
		if off() {
			return false
		}
	}

	return true
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	//nolint:gosec // G115: file descriptors are always small positive integers
	return term.IsTerminal(int(f.Fd()))
}

// Theme holds lipgloss styles for host output.
type Theme struct {
	Title   lipgloss.Style
	OK      lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Border  lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
		Label:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}
