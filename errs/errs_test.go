package errs

import (
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMessages(t *testing.T) {
	Convey("Error messages", t, func() {
		Convey("HTTP carries status and detail", func() {
			err := HTTP(404, "Page not found")
			So(err.Error(), ShouldEqual, "HTTP request failed: Page not found (status code: 404)")
		})

		Convey("QualityNotAvailable lists the catalog", func() {
			err := QualityNotAvailable("2160p", []string{"1080p", "720p", "480p"})
			So(err.Error(), ShouldEqual, "Quality not available: 2160p (available: [1080p, 720p, 480p])")
		})

		Convey("MaxRetries carries the attempt count", func() {
			err := MaxRetries(3, "Connection failed: reset by peer")
			So(err.Error(), ShouldEqual, "Download failed after 3 attempts: Connection failed: reset by peer")
		})

		Convey("Filesystem kinds carry the path", func() {
			err := FileWrite("/tmp/out.mp4", io.ErrClosedPipe)
			So(err.Error(), ShouldEqual, "Failed to write file: /tmp/out.mp4")
		})

		Convey("Other passes the message through", func() {
			So(Other("boom").Error(), ShouldEqual, "boom")
		})
	})
}

func TestUnwrap(t *testing.T) {
	Convey("Unwrap exposes the cause", t, func() {
		cause := io.ErrUnexpectedEOF
		err := Interrupted("stream closed", cause)
		So(errors.Is(err, io.ErrUnexpectedEOF), ShouldBeTrue)

		var structured *Error
		So(errors.As(err, &structured), ShouldBeTrue)
		So(structured.Kind, ShouldEqual, KindInterrupted)
	})
}

func TestIsRetryable(t *testing.T) {
	Convey("IsRetryable", t, func() {
		Convey("Transient kinds retry", func() {
			So(IsRetryable(Timeout("after 30 seconds", nil)), ShouldBeTrue)
			So(IsRetryable(Connection("refused", nil)), ShouldBeTrue)
			So(IsRetryable(Network("reset", nil)), ShouldBeTrue)
			So(IsRetryable(Interrupted("eof", nil)), ShouldBeTrue)
		})

		Convey("HTTP status failures never retry", func() {
			So(IsRetryable(HTTP(404, "not found")), ShouldBeFalse)
			So(IsRetryable(HTTP(503, "unavailable")), ShouldBeFalse)
		})

		Convey("Fatal and foreign errors never retry", func() {
			So(IsRetryable(FileWrite("/tmp/x", nil)), ShouldBeFalse)
			So(IsRetryable(QualityNotAvailable("720p", nil)), ShouldBeFalse)
			So(IsRetryable(Cancelled()), ShouldBeFalse)
			So(IsRetryable(errors.New("plain")), ShouldBeFalse)
		})
	})
}
