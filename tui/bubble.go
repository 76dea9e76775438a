// Package tui implements the interactive stream picker.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/style"
)

// statefulBubble holds the picker state for a single rendition catalog.
type statefulBubble struct {
	keymap *statefulKeymap

	streamsC list.Model

	info      *media.Info
	streams   []*media.Stream
	selected  *media.Stream
	cancelled bool

	width, height int
}

// resize propagates terminal dimension changes to the list component.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.streamsC.SetSize(b.width, b.height)
	b.streamsC.Help.Width = b.width
}

// newBubble assembles the picker model over a non-empty stream set.
func newBubble(info *media.Info, streams []*media.Stream) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		keymap:  keymap,
		info:    info,
		streams: streams,
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	listC := list.New([]list.Item{}, delegate, 0, 0)
	listC.KeyMap = keymap.forList()
	listC.AdditionalShortHelpKeys = keymap.ShortHelp
	listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	listC.Title = bubble.listTitle()
	listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	listC.Styles.NoItems = paddingStyle
	listC.FilterInput.Prompt = viper.GetString(key.TUIPromptString)
	listC.SetShowPagination(false)
	listC.SetShowStatusBar(false)

	listC.SetItems(lo.Map(streams, func(stream *media.Stream, _ int) list.Item {
		return &listItem{stream: stream}
	}))

	bubble.streamsC = listC
	return bubble
}

func (b *statefulBubble) listTitle() string {
	title := []rune(b.info.Title)
	if len(title) > 40 {
		title = append(title[:40], '…')
	}
	return fmt.Sprintf("Streams - %s", string(title))
}
