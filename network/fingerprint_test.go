package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/constant"
)

func TestFingerprintRoundTripper(t *testing.T) {
	Convey("Given a host that does not negotiate h2", t, func() {
		var gotUserAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		Convey("The round tripper falls back to HTTP/1.1 and injects the user agent", func() {
			resp, err := Fingerprint.Get(server.URL)

			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(gotUserAgent, ShouldEqual, constant.UserAgent)
		})

		Convey("A caller-provided user agent is preserved", func() {
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			So(err, ShouldBeNil)
			req.Header.Set("User-Agent", "custom/1.0")

			resp, err := Fingerprint.Do(req)

			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(gotUserAgent, ShouldEqual, "custom/1.0")
		})
	})
}
