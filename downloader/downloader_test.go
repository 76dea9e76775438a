package downloader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/progress"
)

// fakeExtractor serves a fixed catalog.
type fakeExtractor struct {
	info *media.Info
	err  error
}

func (f *fakeExtractor) Name() string   { return "fake" }
func (f *fakeExtractor) Require() error { return nil }
func (f *fakeExtractor) Info(context.Context, string) (*media.Info, error) {
	return f.info, f.err
}

// fakeEncoder records conversions and fabricates the output file.
type fakeEncoder struct {
	converted []string
}

func (f *fakeEncoder) Require() error { return nil }
func (f *fakeEncoder) Convert(_ context.Context, input, output, format string) error {
	f.converted = append(f.converted, format)
	data := lo.Must(filesystem.API().ReadFile(input))
	return filesystem.API().WriteFile(output, data, 0644)
}

func testOptions(serverURL string) Options {
	return Options{
		Dir:         "/downloads",
		Filter:      media.Best(),
		AudioFormat: "mp3",
		Template:    "{title}_{id}",
		Overwrite:   true,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
		Reporter:    progress.Discard(),
		Client:      http.DefaultClient,
	}
}

func TestDownload(t *testing.T) {
	Convey("Given an extractable resource", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("video bytes"))
		}))
		defer server.Close()

		info := &media.Info{
			ID:       "abc123",
			Title:    "My Video!",
			Duration: 213,
			Streams: []*media.Stream{
				{URL: server.URL + "/720", Quality: "720p", Format: "mp4"},
				{URL: server.URL + "/1080", Quality: "1080p", Format: "mp4"},
			},
		}

		extractor := &fakeExtractor{info: info}
		d := New(testOptions(server.URL), extractor, &fakeEncoder{})

		Convey("Download resolves template, selects best and writes the file", func() {
			result, err := d.Download(context.Background(), "https://host/watch?v=abc123")

			So(err, ShouldBeNil)
			So(result.Path, ShouldEqual, "/downloads/My_Video_abc123.mp4")
			So(result.Size, ShouldEqual, int64(len("video bytes")))
			So(result.ID, ShouldEqual, "abc123")
			So(result.Title, ShouldEqual, "My Video!")
			So(lo.Must(filesystem.API().Exists(result.Path)), ShouldBeTrue)
		})

		Convey("An exact quality miss surfaces the selection error", func() {
			options := testOptions(server.URL)
			options.Filter = media.Exact(2160)
			strict := New(options, extractor, &fakeEncoder{})

			_, err := strict.Download(context.Background(), "https://host/watch?v=abc123")

			var structured *errs.Error
			So(errors.As(err, &structured), ShouldBeTrue)
			So(structured.Kind, ShouldEqual, errs.KindQualityNotAvailable)
			So(structured.Available, ShouldResemble, []string{"1080p", "720p"})
		})

		Convey("An existing destination is refused unless confirmed", func() {
			options := testOptions(server.URL)
			options.Overwrite = false
			d := New(options, extractor, &fakeEncoder{})

			lo.Must0(filesystem.API().WriteFile("/downloads/My_Video_abc123.mp4", []byte("old"), 0644))

			_, err := d.Download(context.Background(), "https://host/watch?v=abc123")

			var structured *errs.Error
			So(errors.As(err, &structured), ShouldBeTrue)
			So(structured.Kind, ShouldEqual, errs.KindFileWrite)

			Convey("and a confirming callback allows the replacement", func() {
				options.Confirm = func(string) bool { return true }
				d := New(options, extractor, &fakeEncoder{})

				result, err := d.Download(context.Background(), "https://host/watch?v=abc123")

				So(err, ShouldBeNil)
				So(string(lo.Must(filesystem.API().ReadFile(result.Path))), ShouldEqual, "video bytes")
			})
		})

		Convey("Extraction failures pass through untouched", func() {
			failing := New(testOptions(server.URL), &fakeExtractor{err: errs.Private("abc123")}, &fakeEncoder{})

			_, err := failing.Download(context.Background(), "https://host/watch?v=abc123")

			var structured *errs.Error
			So(errors.As(err, &structured), ShouldBeTrue)
			So(structured.Kind, ShouldEqual, errs.KindPrivate)
		})
	})
}

func TestDownloadAudio(t *testing.T) {
	Convey("Given a catalog with audio streams", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("audio bytes"))
		}))
		defer server.Close()

		makeInfo := func(format string) *media.Info {
			return &media.Info{
				ID:    "abc123",
				Title: "My Video!",
				Streams: []*media.Stream{
					{URL: server.URL + "/v", Quality: "720p", Format: "mp4"},
					{URL: server.URL + "/a", Quality: "audio", Format: format, AudioOnly: true, Bitrate: mo.Some(uint64(128))},
				},
			}
		}

		Convey("A matching source format skips conversion", func() {
			enc := &fakeEncoder{}
			d := New(testOptions(server.URL), &fakeExtractor{info: makeInfo("mp3")}, enc)

			result, err := d.DownloadAudio(context.Background(), "https://host/watch?v=abc123")

			So(err, ShouldBeNil)
			So(result.Path, ShouldEqual, "/downloads/My_Video_abc123.mp3")
			So(enc.converted, ShouldBeEmpty)
		})

		Convey("A differing source format goes through the encoder", func() {
			enc := &fakeEncoder{}
			d := New(testOptions(server.URL), &fakeExtractor{info: makeInfo("m4a")}, enc)

			result, err := d.DownloadAudio(context.Background(), "https://host/watch?v=abc123")

			So(err, ShouldBeNil)
			So(result.Path, ShouldEqual, "/downloads/My_Video_abc123.mp3")
			So(enc.converted, ShouldResemble, []string{"mp3"})

			Convey("and the intermediate file is removed", func() {
				So(lo.Must(filesystem.API().Exists("/downloads/My_Video_abc123.m4a")), ShouldBeFalse)
			})
		})

		Convey("The AudioOnly option routes Download to the audio path", func() {
			options := testOptions(server.URL)
			options.AudioOnly = true
			d := New(options, &fakeExtractor{info: makeInfo("mp3")}, &fakeEncoder{})

			result, err := d.Download(context.Background(), "https://host/watch?v=abc123")

			So(err, ShouldBeNil)
			So(result.Path, ShouldEqual, "/downloads/My_Video_abc123.mp3")
		})

		Convey("A catalog without audio fails with no-streams", func() {
			videoOnly := &media.Info{
				ID:      "abc123",
				Title:   "My Video!",
				Streams: []*media.Stream{{URL: server.URL, Quality: "720p", Format: "mp4"}},
			}
			d := New(testOptions(server.URL), &fakeExtractor{info: videoOnly}, &fakeEncoder{})

			_, err := d.DownloadAudio(context.Background(), "https://host/watch?v=abc123")

			var structured *errs.Error
			So(errors.As(err, &structured), ShouldBeTrue)
			So(structured.Kind, ShouldEqual, errs.KindNoStreams)
		})
	})
}
