package ytdlp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/util"
)

// dump mirrors the JSON schema emitted by `yt-dlp --dump-json`.
type dump struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Duration    *float64     `json:"duration"`
	DurationStr *string      `json:"duration_string"`
	Thumbnail   *string      `json:"thumbnail"`
	Channel     *string      `json:"channel"`
	UploadDate  *string      `json:"upload_date"`
	ViewCount   *uint64      `json:"view_count"`
	Formats     []dumpFormat `json:"formats"`
}

// dumpFormat is a single entry of the dump's formats array.
type dumpFormat struct {
	FormatID   string   `json:"format_id"`
	URL        *string  `json:"url"`
	Ext        *string  `json:"ext"`
	Resolution *string  `json:"resolution"`
	Height     *uint32  `json:"height"`
	Width      *uint32  `json:"width"`
	VCodec     *string  `json:"vcodec"`
	ACodec     *string  `json:"acodec"`
	FileSize   *uint64  `json:"filesize"`
	TBR        *float64 `json:"tbr"`
	FPS        *float64 `json:"fps"`
}

// parseDump converts raw dump JSON into the domain catalog.
func parseDump(raw []byte) (*media.Info, error) {
	var d dump
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, errs.Extraction("parse yt-dlp output", err)
	}

	info := &media.Info{
		ID:          d.ID,
		Title:       d.Title,
		Description: optString(d.Description),
		Channel:     optString(d.Channel),
		Thumbnail:   optString(d.Thumbnail),
	}
	if d.Duration != nil {
		info.Duration = uint64(*d.Duration)
	} else if d.DurationStr != nil {
		// Live recordings report only a clock-style duration_string.
		if seconds, err := util.ParseDuration(*d.DurationStr); err == nil {
			info.Duration = seconds
		}
	}
	if d.ViewCount != nil {
		info.ViewCount = mo.Some(*d.ViewCount)
	}
	if d.UploadDate != nil {
		// yt-dlp dates arrive as YYYYMMDD.
		if date, err := time.Parse("20060102", *d.UploadDate); err == nil {
			info.UploadDate = mo.Some(date)
		}
	}

	for _, f := range d.Formats {
		if stream := f.toStream(); stream != nil {
			info.Streams = append(info.Streams, stream)
		}
	}
	return info, nil
}

// toStream maps a format entry to a domain stream, or nil when the entry
// lacks a byte-source URL.
func (f dumpFormat) toStream() *media.Stream {
	if f.URL == nil {
		return nil
	}

	audioOnly := (f.VCodec != nil && *f.VCodec == "none") ||
		(f.Height == nil && f.ACodec != nil && *f.ACodec != "none")

	quality := "unknown"
	switch {
	case audioOnly:
		quality = "audio"
	case f.Height != nil:
		quality = fmt.Sprintf("%dp", *f.Height)
	case f.Resolution != nil:
		quality = *f.Resolution
	}

	stream := &media.Stream{
		URL:       *f.URL,
		Quality:   quality,
		AudioOnly: audioOnly,
		Format:    "unknown",
	}
	if f.Ext != nil {
		stream.Format = *f.Ext
	}
	if f.VCodec != nil && *f.VCodec != "none" {
		stream.VideoCodec = mo.Some(*f.VCodec)
	}
	if f.ACodec != nil && *f.ACodec != "none" {
		stream.AudioCodec = mo.Some(*f.ACodec)
	}
	if f.FileSize != nil {
		stream.FileSize = mo.Some(*f.FileSize)
	}
	if f.TBR != nil {
		stream.Bitrate = mo.Some(uint64(*f.TBR))
	}
	if f.FPS != nil {
		stream.FPS = mo.Some(*f.FPS)
	}
	return stream
}

func optString(s *string) mo.Option[string] {
	if s == nil {
		return mo.None[string]()
	}
	return mo.Some(*s)
}
