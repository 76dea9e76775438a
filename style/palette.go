package style

import "github.com/charmbracelet/lipgloss"

// Palette for the interactive picker. Hex values follow catppuccin mocha
// since the list widget draws its own backgrounds and needs stable contrast.
var (
	Base  = lipgloss.Color("#1e1e2e")
	Text  = lipgloss.Color("#cdd6f4")
	Mauve = lipgloss.Color("#cba6f7")
	HiRed = lipgloss.Color("#f38ba8")

	AccentColor = Mauve
)
