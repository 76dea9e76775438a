// Package tui implements the interactive stream picker.
package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Init satisfies the tea.Model interface; the picker needs no startup command.
func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

// Update routes messages to the list component and resolves confirm/cancel keys.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		// Keys mean text while the filter input is focused.
		if b.streamsC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.streamsC.SelectedItem().(*listItem); ok {
				b.selected = item.stream
				return b, tea.Quit
			}
		case bubblesKey.Matches(msg, b.keymap.quit), bubblesKey.Matches(msg, b.keymap.forceQuit):
			b.cancelled = true
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.streamsC, cmd = b.streamsC.Update(msg)
	return b, cmd
}
