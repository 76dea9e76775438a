// Package downloader orchestrates extraction, stream selection, filename
// resolution and the retrying byte transfer for one media resource.
package downloader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/vgrab-cli/vgrab/encoder"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/log"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/provider"
	"github.com/vgrab-cli/vgrab/util"
)

// Result describes one completed download.
type Result struct {
	// Path is the final location of the file on disk.
	Path string
	// Size is the number of bytes written.
	Size int64
	// ID and Title identify the downloaded resource.
	ID    string
	Title string
}

// Downloader runs download operations against a fixed Options value.
type Downloader struct {
	options   Options
	extractor provider.Extractor
	encoder   encoder.Encoder
	transfer  *Transfer
}

// New builds a downloader around the given collaborators.
func New(options Options, extractor provider.Extractor, enc encoder.Encoder) *Downloader {
	return &Downloader{
		options:   options,
		extractor: extractor,
		encoder:   enc,
		transfer: &Transfer{
			Client:     options.Client,
			Reporter:   options.Reporter,
			RetryDelay: options.RetryDelay,
			CreateDirs: options.CreateDirs,
		},
	}
}

// Download fetches the resource at url according to the configured options.
func (d *Downloader) Download(ctx context.Context, url string) (*Result, error) {
	if d.options.AudioOnly {
		return d.DownloadAudio(ctx, url)
	}

	info, err := d.extractor.Info(ctx, url)
	if err != nil {
		return nil, err
	}

	stream, err := media.SelectStream(info, d.options.Filter)
	if err != nil {
		return nil, err
	}
	log.Infof("selected %s for %q", stream.Quality, info.Title)

	return d.DownloadStream(ctx, info, stream)
}

// DownloadStream transfers one specific rendition of an already extracted
// resource, bypassing quality selection.
func (d *Downloader) DownloadStream(ctx context.Context, info *media.Info, stream *media.Stream) (*Result, error) {
	dest := d.destination(info, stream.Format)
	if err := d.checkCollision(dest); err != nil {
		return nil, err
	}

	size, err := d.transfer.Do(ctx, stream.URL, dest, d.options.MaxAttempts)
	if err != nil {
		return nil, err
	}

	return &Result{Path: dest, Size: size, ID: info.ID, Title: info.Title}, nil
}

// DownloadAudio fetches the best audio-only rendition, converting it to the
// configured audio format when the source container differs.
func (d *Downloader) DownloadAudio(ctx context.Context, url string) (*Result, error) {
	info, err := d.extractor.Info(ctx, url)
	if err != nil {
		return nil, err
	}

	stream, ok := info.BestAudioStream().Get()
	if !ok {
		return nil, errs.NoStreams(info.ID)
	}

	dest := d.destination(info, stream.Format)
	if err := d.checkCollision(dest); err != nil {
		return nil, err
	}

	size, err := d.transfer.Do(ctx, stream.URL, dest, d.options.MaxAttempts)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: dest, Size: size, ID: info.ID, Title: info.Title}
	if stream.Format == d.options.AudioFormat {
		return result, nil
	}

	if err := d.encoder.Require(); err != nil {
		return nil, err
	}

	converted := d.destination(info, d.options.AudioFormat)
	if err := d.encoder.Convert(ctx, dest, converted, d.options.AudioFormat); err != nil {
		return nil, err
	}
	if err := util.Delete(dest); err != nil {
		log.Warnf("remove intermediate file %s: %s", dest, err)
	}

	result.Path = converted
	return result, nil
}

// checkCollision decides whether an existing destination may be replaced.
func (d *Downloader) checkCollision(dest string) error {
	if d.options.Overwrite {
		return nil
	}

	exists, err := afero.Exists(filesystem.API(), dest)
	if err != nil || !exists {
		return nil
	}

	if d.options.Confirm != nil && d.options.Confirm(dest) {
		return nil
	}

	return errs.FileWrite(dest, fmt.Errorf("file already exists"))
}

// destination resolves the output path from the filename template.
func (d *Downloader) destination(info *media.Info, extension string) string {
	base := util.ApplyTemplate(d.options.Template, info.Metadata())
	return filepath.Join(d.options.Dir, fmt.Sprintf("%s.%s", base, extension))
}
