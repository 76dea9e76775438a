// Package tui implements the interactive stream picker.
package tui

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/style"
)

// listItem implements the list.Item interface over a single stream rendition.
type listItem struct {
	stream *media.Stream
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	var sb = strings.Builder{}

	if t.stream.AudioOnly {
		sb.WriteString(icon.Get(icon.Audio))
	} else {
		sb.WriteString(icon.Get(icon.Video))
	}
	sb.WriteString(" ")
	sb.WriteString(t.stream.Quality)
	sb.WriteString(" ")
	sb.WriteString(style.Faint(t.stream.Format))

	return sb.String()
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() string {
	var parts []string

	if codec, ok := t.stream.VideoCodec.Get(); ok {
		parts = append(parts, codec)
	}
	if codec, ok := t.stream.AudioCodec.Get(); ok {
		parts = append(parts, codec)
	}
	if fps, ok := t.stream.FPS.Get(); ok {
		parts = append(parts, fmt.Sprintf("%gfps", fps))
	}
	parts = append(parts, t.stream.FormattedSize())

	description := strings.Join(parts, " ")

	if viper.GetBool(key.TUIShowURLs) {
		description = fmt.Sprintf("%s %s", description, style.Faint(t.stream.URL))
	}

	return description
}

// FilterValue provides the string matched against the filter input.
func (t *listItem) FilterValue() string {
	return t.stream.Description()
}
