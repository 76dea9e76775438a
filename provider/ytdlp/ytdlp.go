// Package ytdlp implements metadata extraction by shelling out to the
// yt-dlp binary, which handles site scraping for hundreds of media hosts.
package ytdlp

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/internal/cache"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/log"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/provider"
)

func init() {
	provider.Register(&provider.Provider{
		ID:   "ytdlp",
		Name: "yt-dlp",
		New:  func() provider.Extractor { return New() },
	})
}

// Extractor shells out to yt-dlp for catalog extraction.
type Extractor struct {
	binary string
}

// New creates an extractor using the configured yt-dlp binary path.
func New() *Extractor {
	return &Extractor{binary: viper.GetString(key.ExtractorPath)}
}

func (e *Extractor) Name() string {
	return "yt-dlp"
}

// Require verifies the yt-dlp binary is reachable.
func (e *Extractor) Require() error {
	if _, err := exec.LookPath(e.binary); err != nil {
		return errs.Extraction("yt-dlp not found. Please install yt-dlp and ensure it's in your PATH", err)
	}
	return nil
}

// Version reports the installed yt-dlp version string.
func (e *Extractor) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, e.binary, "--version").Output()
	if err != nil {
		return "", errs.Extraction("query yt-dlp version", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Info extracts the rendition catalog for the resource at url.
func (e *Extractor) Info(ctx context.Context, url string) (*media.Info, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, errs.InvalidURL(url)
	}

	cacheKey := cache.GenerateKey(url, e.Name())

	var cached media.Info
	if cache.Read(cacheKey, &cached) {
		log.Debugf("catalog for %s served from cache", url)
		return &cached, nil
	}

	log.Debugf("extracting %s via %s", url, e.binary)

	cmd := exec.CommandContext(ctx, e.binary, "--dump-json", "--no-warnings", "--no-playlist", url)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errs.Cancelled()
		}
		return nil, classifyStderr(url, stderr.String())
	}

	info, err := parseDump(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	if err := cache.Write(cacheKey, info); err != nil {
		log.Warnf("cache catalog for %s: %s", url, err)
	}

	log.Infof("extracted %q with %d streams", info.Title, len(info.Streams))
	return info, nil
}

// classifyStderr maps yt-dlp failure output onto the structured error taxonomy.
func classifyStderr(url, stderr string) error {
	detail := strings.TrimSpace(stderr)
	lowered := strings.ToLower(detail)

	switch {
	case strings.Contains(lowered, "private video") || strings.Contains(lowered, "sign in"):
		return errs.Private(url)
	case strings.Contains(lowered, "not available in your country") || strings.Contains(lowered, "geo restriction"):
		return errs.RegionBlocked(url)
	case strings.Contains(lowered, "video unavailable") || strings.Contains(lowered, "404"):
		return errs.NotFound(url)
	case strings.Contains(lowered, "unsupported url") || strings.Contains(lowered, "is not a valid url"):
		return errs.InvalidURL(url)
	default:
		return errs.Extraction(detail, nil)
	}
}
