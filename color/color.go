// Package color holds the terminal palette used across the CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a raw color value, either an ANSI index or a hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors. Indexes render with whatever theme the terminal applies,
// so output stays legible on both light and dark backgrounds.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
)
