package downloader

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/network"
	"github.com/vgrab-cli/vgrab/progress"
	"github.com/vgrab-cli/vgrab/util"
	"github.com/vgrab-cli/vgrab/where"
)

// Options is the immutable configuration for one download operation.
// It is constructed once, from config plus flags, and passed by reference;
// nothing mutates it afterwards.
type Options struct {
	// Dir is the destination directory.
	Dir string

	// Filter picks the video rendition.
	Filter media.Filter

	// AudioOnly downloads the best audio stream instead of video.
	AudioOnly bool

	// AudioFormat is the target format for audio-only downloads.
	AudioFormat string

	// Template is the filename template.
	Template string

	// Overwrite replaces an existing destination file without asking.
	Overwrite bool

	// Confirm resolves destination collisions when Overwrite is disabled.
	// A nil Confirm rejects the collision.
	Confirm func(path string) bool

	// CreateDirs creates missing destination directories before writing.
	CreateDirs bool

	// MaxAttempts bounds the transfer retry loop.
	MaxAttempts int

	// RetryDelay is the pause between retryable attempts.
	RetryDelay time.Duration

	// Reporter builds the progress observer per attempt.
	Reporter progress.Factory

	// Client performs the streaming requests.
	Client *http.Client
}

// DefaultOptions builds Options from the active configuration.
func DefaultOptions() Options {
	dir := util.ExpandHome(viper.GetString(key.DownloadPath))
	if dir == "" {
		dir = where.Downloads()
	}

	// Hosts behind anti-bot challenges reject the stock Go TLS stack;
	// the fingerprint client presents a Chrome hello instead.
	client := network.Download
	if viper.GetBool(key.DownloadFingerprint) {
		client = network.Fingerprint
	}

	return Options{
		Dir:         dir,
		Filter:      media.ParseFilter(viper.GetString(key.DownloadQuality), false),
		AudioFormat: viper.GetString(key.FormatAudio),
		Overwrite:   viper.GetBool(key.DownloadOverwrite),
		CreateDirs:  viper.GetBool(key.DownloadCreateDirs),
		Template:    viper.GetString(key.DownloadTemplate),
		MaxAttempts: viper.GetInt(key.DownloadRetries),
		RetryDelay:  DefaultRetryDelay,
		Reporter:    progress.Console(),
		Client:      client,
	}
}
