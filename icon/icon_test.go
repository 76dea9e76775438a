package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/key"
)

func TestGet(t *testing.T) {
	Convey("Icon rendering", t, func() {
		all := []Icon{Download, Success, Fail, Video, Audio, Question, Progress}

		Convey("Every icon renders in every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Plain variant stays ASCII", func() {
			viper.Set(key.IconsVariant, "plain")
			for _, i := range all {
				for _, r := range Get(i) {
					So(r, ShouldBeLessThan, 128)
				}
			}
		})

		Convey("Unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Download), ShouldBeEmpty)
		})
	})
}
