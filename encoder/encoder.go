// Package encoder converts downloaded media between container formats by
// shelling out to ffmpeg.
package encoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/log"
)

// Encoder converts a media file into a target format.
type Encoder interface {
	Require() error
	Convert(ctx context.Context, input, output, format string) error
}

// FFmpeg is the default encoder backed by the ffmpeg binary.
type FFmpeg struct {
	binary string
}

// NewFFmpeg creates an encoder using the ffmpeg binary from PATH.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{binary: "ffmpeg"}
}

// Require verifies the ffmpeg binary is reachable.
func (f *FFmpeg) Require() error {
	if _, err := exec.LookPath(f.binary); err != nil {
		return errs.EncoderNotFound()
	}
	return nil
}

// Convert transcodes input into output with the codec settings for format.
// The output file is overwritten when present.
func (f *FFmpeg) Convert(ctx context.Context, input, output, format string) error {
	if exists, err := filesystem.API().Exists(input); err != nil || !exists {
		return errs.FileRead(input, err)
	}

	args := []string{"-y", "-i", input}
	args = append(args, formatArgs(format)...)
	args = append(args, output)

	log.Debugf("ffmpeg %v", args)

	cmd := exec.CommandContext(ctx, f.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errs.Cancelled()
		}
		return errs.EncoderFailed(fmt.Sprintf("conversion to %s failed: %s", format, stderr.String()), err)
	}
	return nil
}

// formatArgs returns the codec arguments for a target audio format.
func formatArgs(format string) []string {
	switch format {
	case "mp3":
		return []string{"-vn", "-codec:a", "libmp3lame", "-q:a", "2"}
	case "m4a":
		return []string{"-vn", "-codec:a", "aac", "-b:a", "192k"}
	case "flac":
		return []string{"-vn", "-codec:a", "flac"}
	case "wav":
		return []string{"-vn", "-codec:a", "pcm_s16le"}
	case "opus":
		return []string{"-vn", "-codec:a", "libopus", "-b:a", "128k"}
	default:
		return []string{"-vn"}
	}
}
