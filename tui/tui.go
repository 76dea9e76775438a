// Package tui implements the interactive stream picker.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/media"
)

// Options encapsulates the runtime configuration for the stream picker.
type Options struct {
	Info *media.Info
	// AudioOnly restricts the catalog to audio renditions.
	AudioOnly bool
}

// Run presents the rendition catalog and blocks until the user picks a
// stream or cancels.
func Run(options *Options) (*media.Stream, error) {
	streams := pickable(options.Info, options.AudioOnly)
	if len(streams) == 0 {
		return nil, errs.NoStreams(options.Info.Title)
	}

	bubble := newBubble(options.Info, streams)

	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return nil, errs.Other("stream picker failed: " + err.Error())
	}

	if bubble.cancelled || bubble.selected == nil {
		return nil, errs.Cancelled()
	}

	return bubble.selected, nil
}

func pickable(info *media.Info, audioOnly bool) []*media.Stream {
	var streams []*media.Stream
	for _, stream := range info.Streams {
		if audioOnly && !stream.AudioOnly {
			continue
		}
		streams = append(streams, stream)
	}
	return streams
}
