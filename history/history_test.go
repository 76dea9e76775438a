package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/downloader"
	"github.com/vgrab-cli/vgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a completed download", t, func() {
		result := &downloader.Result{
			Path:  "/downloads/My_Video_abc123.mp4",
			Size:  1048576,
			ID:    "abc123",
			Title: "My Video!",
		}

		Convey("When saving the record", func() {
			err := Save(result)
			So(err, ShouldBeNil)

			Convey("It can be read back", func() {
				records, err := Get()
				So(err, ShouldBeNil)
				So(records["My Video! (abc123)"].Path, ShouldEqual, result.Path)
				So(records["My Video! (abc123)"].Size, ShouldEqual, result.Size)
			})

			Convey("It appears in the listing", func() {
				records, err := List()
				So(err, ShouldBeNil)
				So(records, ShouldNotBeEmpty)
				So(records[0].ID, ShouldEqual, "abc123")
			})

			Convey("It is fuzzy-searchable by title", func() {
				matches, err := Search("myvid")
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)

				none, err := Search("zebra")
				So(err, ShouldBeNil)
				So(none, ShouldBeEmpty)
			})

			Convey("It can be removed", func() {
				records, _ := Get()
				So(Remove(records["My Video! (abc123)"]), ShouldBeNil)

				after, err := Get()
				So(err, ShouldBeNil)
				_, exists := after["My Video! (abc123)"]
				So(exists, ShouldBeFalse)
			})
		})
	})
}
