// Package media defines the domain models for extracted media resources and
// the quality selection logic over their rendition catalogs.
package media

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/vgrab-cli/vgrab/util"
)

// Info is the rendition catalog extracted for a single remote resource.
// It is produced once per resource, held immutably for the duration of one
// download operation, and never persisted.
type Info struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration uint64 `json:"duration"`

	Description mo.Option[string]    `json:"description"`
	Channel     mo.Option[string]    `json:"channel"`
	Thumbnail   mo.Option[string]    `json:"thumbnail"`
	UploadDate  mo.Option[time.Time] `json:"upload_date"`
	ViewCount   mo.Option[uint64]    `json:"view_count"`

	Streams []*Stream `json:"streams"`
}

// Metadata builds the attribute set used during filename resolution.
func (i *Info) Metadata() util.Metadata {
	var duration mo.Option[string]
	if i.Duration > 0 {
		duration = mo.Some(util.FormatDuration(i.Duration))
	}
	return util.Metadata{
		Title:    i.Title,
		ID:       i.ID,
		Date:     i.UploadDate,
		Duration: duration,
	}
}

// Stream is a single downloadable rendition of a resource.
type Stream struct {
	// Direct URL to the byte source.
	URL string `json:"url"`
	// Quality is the free-form label from the host (e.g. "1080p", "720p60", "audio").
	// It is not an enum in the source data and must be parsed.
	Quality string `json:"quality"`
	// Format is the container tag (e.g. "mp4", "webm").
	Format string `json:"format"`
	// AudioOnly excludes the stream from video quality selection.
	AudioOnly bool `json:"audio_only"`

	VideoCodec mo.Option[string]  `json:"video_codec"`
	AudioCodec mo.Option[string]  `json:"audio_codec"`
	FileSize   mo.Option[uint64]  `json:"file_size"`
	Bitrate    mo.Option[uint64]  `json:"bitrate"`
	FPS        mo.Option[float64] `json:"fps"`
}

// Description renders a short human-readable summary of the stream.
func (s *Stream) Description() string {
	if s.AudioOnly {
		if bitrate, ok := s.Bitrate.Get(); ok {
			return fmt.Sprintf("audio %s %dk", s.Format, bitrate)
		}
		return fmt.Sprintf("audio %s", s.Format)
	}
	return fmt.Sprintf("%s %s", s.Quality, s.Format)
}

// FormattedSize renders the known byte size, or a placeholder when unknown.
func (s *Stream) FormattedSize() string {
	if size, ok := s.FileSize.Get(); ok {
		return util.FormatBytes(size)
	}
	return "unknown size"
}
