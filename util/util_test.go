package util

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
			So(SanitizeFilename("my/video\\name"), ShouldEqual, "my_video_name")
			So(SanitizeFilename("My Video!"), ShouldEqual, "My_Video")
		})
		Convey("Should collapse underscore runs", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
			So(SanitizeFilename("video:/\\*?name"), ShouldEqual, "video_name")
		})
		Convey("Should keep dots, hyphens and underscores", func() {
			So(SanitizeFilename("video.2024.final.mp4"), ShouldEqual, "video.2024.final.mp4")
			So(SanitizeFilename("my-video-name"), ShouldEqual, "my-video-name")
			So(SanitizeFilename("my_video_name"), ShouldEqual, "my_video_name")
		})
		Convey("Should be idempotent", func() {
			for _, s := range []string{"My Video!", "video: the sequel", "a__b", "", "???"} {
				once := SanitizeFilename(s)
				So(SanitizeFilename(once), ShouldEqual, once)
			}
		})
	})
}

func TestApplyTemplate(t *testing.T) {
	Convey("ApplyTemplate", t, func() {
		meta := Metadata{
			Title: "My Video!",
			ID:    "abc123",
		}

		Convey("Should substitute title and id", func() {
			So(ApplyTemplate("{title}_{id}", meta), ShouldEqual, "My_Video_abc123")
		})

		Convey("Should substitute an explicit date", func() {
			meta.Date = mo.Some(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
			So(ApplyTemplate("{id}-{date}", meta), ShouldEqual, "abc123-2024-03-15")
		})

		Convey("Should default date to today", func() {
			today := time.Now().Format("2006-01-02")
			So(ApplyTemplate("{date}", meta), ShouldEqual, today)
		})

		Convey("Should substitute empty duration when absent", func() {
			So(ApplyTemplate("{id}{duration}", meta), ShouldEqual, "abc123")
			meta.Duration = mo.Some("03:15")
			So(ApplyTemplate("{id} {duration}", meta), ShouldEqual, "abc123 03:15")
		})

		Convey("Should leave unknown placeholders verbatim", func() {
			So(ApplyTemplate("{channel}_{id}", meta), ShouldEqual, "{channel}_abc123")
		})
	})
}

func TestFormatBytes(t *testing.T) {
	Convey("FormatBytes", t, func() {
		So(FormatBytes(500), ShouldEqual, "500 B")
		So(FormatBytes(1024), ShouldEqual, "1.00 KB")
		So(FormatBytes(1536), ShouldEqual, "1.50 KB")
		So(FormatBytes(1024*1024), ShouldEqual, "1.00 MB")
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration", t, func() {
		So(FormatDuration(45), ShouldEqual, "00:00:45")
		So(FormatDuration(3661), ShouldEqual, "01:01:01")
		So(FormatDuration(7384), ShouldEqual, "02:03:04")
	})
}

func TestParseDuration(t *testing.T) {
	Convey("ParseDuration", t, func() {
		Convey("Should accept all three layouts", func() {
			for input, want := range map[string]uint64{
				"45":       45,
				"02:30":    150,
				"01:30:45": 5445,
			} {
				got, err := ParseDuration(input)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Should reject malformed input", func() {
			for _, input := range []string{"abc", "1:2:3:4", "1:xx"} {
				_, err := ParseDuration(input)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
