package provider

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vgrab-cli/vgrab/media"
)

type nullExtractor struct {
	name string
}

func (n *nullExtractor) Name() string   { return n.name }
func (n *nullExtractor) Require() error { return nil }
func (n *nullExtractor) Info(ctx context.Context, url string) (*media.Info, error) {
	return &media.Info{}, nil
}

func init() {
	Register(&Provider{ID: "alpha", Name: "Alpha", New: func() Extractor { return &nullExtractor{"Alpha"} }})
	Register(&Provider{ID: "beta", Name: "Beta", New: func() Extractor { return &nullExtractor{"Beta"} }})
}

func TestRegistry(t *testing.T) {
	Convey("Given registered providers", t, func() {
		Convey("All returns them in registration order", func() {
			all := All()
			So(all, ShouldHaveLength, 2)
			So(all[0].ID, ShouldEqual, "alpha")
			So(all[1].ID, ShouldEqual, "beta")
		})

		Convey("Get finds a provider by id or name", func() {
			byID, ok := Get("beta")
			So(ok, ShouldBeTrue)
			So(byID.Name, ShouldEqual, "Beta")

			byName, ok := Get("Alpha")
			So(ok, ShouldBeTrue)
			So(byName.ID, ShouldEqual, "alpha")
		})

		Convey("Get misses on unknown names", func() {
			_, ok := Get("gamma")
			So(ok, ShouldBeFalse)
		})
	})
}
