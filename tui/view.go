// Package tui implements the interactive stream picker.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	return paddingStyle.Render(b.streamsC.View())
}
