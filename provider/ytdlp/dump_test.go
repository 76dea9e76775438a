package ytdlp

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/media"
)

const fixture = `{
	"id": "abc123",
	"title": "My Video!",
	"description": "A test fixture",
	"duration": 213.4,
	"thumbnail": "https://i.example/thumb.jpg",
	"channel": "Test Channel",
	"upload_date": "20240315",
	"view_count": 42000,
	"formats": [
		{"format_id": "18", "url": "https://cdn.example/18", "ext": "mp4", "height": 360, "width": 640, "vcodec": "avc1", "acodec": "mp4a", "filesize": 1048576, "tbr": 500.2, "fps": 30.0},
		{"format_id": "137", "url": "https://cdn.example/137", "ext": "mp4", "height": 1080, "vcodec": "avc1", "acodec": "none", "tbr": 4400.1},
		{"format_id": "140", "url": "https://cdn.example/140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a", "tbr": 129.5},
		{"format_id": "sb0", "ext": "mhtml", "resolution": "48x27"}
	]
}`

func TestParseDump(t *testing.T) {
	Convey("Given a yt-dlp dump", t, func() {
		info, err := parseDump([]byte(fixture))
		So(err, ShouldBeNil)

		Convey("Resource metadata maps across", func() {
			So(info.ID, ShouldEqual, "abc123")
			So(info.Title, ShouldEqual, "My Video!")
			So(info.Duration, ShouldEqual, 213)
			So(info.Channel.OrEmpty(), ShouldEqual, "Test Channel")
			So(info.ViewCount.OrElse(0), ShouldEqual, 42000)

			date, ok := info.UploadDate.Get()
			So(ok, ShouldBeTrue)
			So(date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("Formats without a URL are dropped", func() {
			So(info.Streams, ShouldHaveLength, 3)
		})

		Convey("Video streams get height-derived labels", func() {
			So(info.Streams[0].Quality, ShouldEqual, "360p")
			So(info.Streams[1].Quality, ShouldEqual, "1080p")
			So(info.Streams[0].AudioOnly, ShouldBeFalse)
		})

		Convey("vcodec none marks a stream audio-only", func() {
			audio := info.Streams[2]
			So(audio.AudioOnly, ShouldBeTrue)
			So(audio.Quality, ShouldEqual, "audio")
			So(audio.VideoCodec.IsAbsent(), ShouldBeTrue)
			So(audio.Bitrate.OrElse(0), ShouldEqual, 129)
		})

		Convey("Optional technical fields survive the mapping", func() {
			first := info.Streams[0]
			So(first.FileSize.OrElse(0), ShouldEqual, 1048576)
			So(first.FPS.OrElse(0), ShouldEqual, 30.0)
			So(first.AudioCodec.OrEmpty(), ShouldEqual, "mp4a")
		})

		Convey("The catalog supports selection directly", func() {
			stream, err := media.SelectStream(info, media.Best())
			So(err, ShouldBeNil)
			So(stream.Quality, ShouldEqual, "1080p")
		})
	})

	Convey("A dump with only a clock-style duration", t, func() {
		info, err := parseDump([]byte(`{"id": "live1", "title": "Stream", "duration_string": "01:03:25", "formats": []}`))
		So(err, ShouldBeNil)

		Convey("Parses it into seconds", func() {
			So(info.Duration, ShouldEqual, 3805)
		})
	})

	Convey("Malformed JSON fails with an extraction error", t, func() {
		_, err := parseDump([]byte("{not json"))
		So(err, ShouldNotBeNil)
	})
}

func TestClassifyStderr(t *testing.T) {
	Convey("classifyStderr", t, func() {
		cases := map[string]string{
			"ERROR: Private video. Sign in if you've been granted access": "Resource is private",
			"ERROR: The uploader has not made this video available in your country": "unavailable in your region",
			"ERROR: Video unavailable":          "Resource not found",
			"ERROR: Unsupported URL: ftp://x":   "Invalid media URL",
			"ERROR: something else went wrong":  "Failed to extract media info",
		}
		for stderr, want := range cases {
			err := classifyStderr("https://host/watch?v=x", stderr)
			So(err.Error(), ShouldContainSubstring, want)
		}
	})
}
