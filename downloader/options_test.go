package downloader

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/network"
)

func TestDefaultOptions(t *testing.T) {
	Convey("DefaultOptions mirrors the active configuration", t, func() {
		viper.Set(key.DownloadRetries, 5)
		viper.Set(key.DownloadCreateDirs, false)
		viper.Set(key.DownloadFingerprint, false)

		options := DefaultOptions()
		So(options.MaxAttempts, ShouldEqual, 5)
		So(options.CreateDirs, ShouldBeFalse)
		So(options.Client, ShouldEqual, network.Download)

		Convey("The fingerprint toggle swaps the streaming client", func() {
			viper.Set(key.DownloadFingerprint, true)
			So(DefaultOptions().Client, ShouldEqual, network.Fingerprint)
		})

		Convey("Directory creation follows its key", func() {
			viper.Set(key.DownloadCreateDirs, true)
			So(DefaultOptions().CreateDirs, ShouldBeTrue)
		})

		Reset(func() {
			viper.Set(key.DownloadCreateDirs, true)
			viper.Set(key.DownloadFingerprint, false)
		})
	})
}
