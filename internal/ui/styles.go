package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - saved
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - prompts, discarded entries
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// TitleStyle is for box titles ("HOMEWORK 12")
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// KeyStyle is for detail keys ("Class:")
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	// ValueStyle is for detail values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// ScoreStyle highlights "you got N right out of M"
	ScoreStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ProblemStyle is for problem list rows
	ProblemStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	// MutedStyle is for empty-list placeholders and hints
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// PromptStyle is for the y/n question
	PromptStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Result markers
const (
	SuccessMarker = "✓"
	WarningMarker = "!"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, clamped to the
// supported range.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return clampWidth(width)
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// boxStyle returns a bordered box in the given color.
func boxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2)
}
