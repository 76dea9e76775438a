package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Should run on the OS filesystem by default", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to memory and persist writes there", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			So(API().WriteFile("/probe", []byte("x"), 0644), ShouldBeNil)
			data, err := API().ReadFile("/probe")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "x")
		})

		Convey("Should drop memory contents when reset", func() {
			SetMemMapFs()
			So(API().WriteFile("/probe", []byte("x"), 0644), ShouldBeNil)
			SetMemMapFs()
			exists, err := API().Exists("/probe")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
