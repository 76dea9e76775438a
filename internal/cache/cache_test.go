package cache

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

type payload struct {
	Title   string   `json:"title"`
	Heights []int    `json:"heights"`
	Tags    []string `json:"tags"`
}

func TestGenerateKey(t *testing.T) {
	Convey("Given a URL and extractor pair", t, func() {
		Convey("The key is deterministic", func() {
			So(
				GenerateKey("https://host/watch?v=abc", "yt-dlp"),
				ShouldEqual,
				GenerateKey("https://host/watch?v=abc", "yt-dlp"),
			)
		})

		Convey("Case and surrounding whitespace do not change the key", func() {
			So(
				GenerateKey("  https://HOST/watch?v=abc ", "yt-dlp"),
				ShouldEqual,
				GenerateKey("https://host/watch?v=abc", "yt-dlp"),
			)
		})

		Convey("Different extractors produce different keys", func() {
			So(
				GenerateKey("https://host/watch?v=abc", "yt-dlp"),
				ShouldNotEqual,
				GenerateKey("https://host/watch?v=abc", "other"),
			)
		})
	})
}

func TestReadWrite(t *testing.T) {
	Convey("Given a cached object", t, func() {
		key := GenerateKey("https://host/watch?v=roundtrip", "yt-dlp")
		stored := payload{Title: "My Video", Heights: []int{1080, 720}, Tags: []string{"a", "b"}}

		So(Write(key, &stored), ShouldBeNil)

		Convey("Read restores it before the TTL elapses", func() {
			var restored payload
			So(Read(key, &restored), ShouldBeTrue)
			So(restored, ShouldResemble, stored)
		})

		Convey("Read misses for unknown keys", func() {
			var restored payload
			So(Read(GenerateKey("https://host/other", "yt-dlp"), &restored), ShouldBeFalse)
		})
	})
}
