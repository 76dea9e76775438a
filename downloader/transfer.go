package downloader

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/vgrab-cli/vgrab/constant"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/log"
	"github.com/vgrab-cli/vgrab/progress"
)

// DefaultRetryDelay is the fixed pause between retryable attempts.
// The policy is intentionally plain: no jitter, no exponential growth.
const DefaultRetryDelay = 2 * time.Second

const copyBufferSize = 32 * 1024

// Transfer streams remote bytes to local files with bounded retries.
type Transfer struct {
	// Client performs the streaming GET requests.
	Client *http.Client

	// Reporter builds a progress observer per attempt.
	Reporter progress.Factory

	// RetryDelay is the pause between retryable attempts.
	RetryDelay time.Duration

	// CreateDirs creates missing parent directories of the destination.
	CreateDirs bool
}

// Do downloads url to dest, retrying transient failures up to maxAttempts
// total attempts, and returns the number of bytes written.
//
// Every attempt restarts the file from byte zero; there is no resume
// support and a failed attempt's partial bytes are overwritten wholesale.
// Non-retryable failures (bad HTTP status included) abort immediately.
func (t *Transfer) Do(ctx context.Context, url, dest string, maxAttempts int) (int64, error) {
	if maxAttempts <= 0 {
		return 0, errs.MaxRetries(maxAttempts, "no attempts were permitted")
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		written, err := t.attempt(ctx, url, dest)
		if err == nil {
			return written, nil
		}
		if !errs.IsRetryable(err) {
			return 0, err
		}

		lastErr = err
		if attempt < maxAttempts {
			log.Warnf("attempt %d/%d failed: %s, retrying in %s", attempt, maxAttempts, err, t.RetryDelay)
			select {
			case <-time.After(t.RetryDelay):
			case <-ctx.Done():
				return 0, errs.Cancelled()
			}
		}
	}
	return 0, errs.MaxRetries(maxAttempts, lastErr.Error())
}

// attempt performs one full streaming download into dest.
func (t *Transfer) attempt(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errs.InvalidURL(url)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := t.Client.Do(req)
	if err != nil {
		return 0, classifyRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, errs.HTTP(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// ContentLength of zero or below means the total is unknown and the
	// reporter runs indeterminate.
	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	reporter := t.Reporter(total)

	if dir := filepath.Dir(dest); dir != "." && t.CreateDirs {
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			return 0, errs.DirCreate(dir, err)
		}
	}

	file, err := filesystem.API().Create(dest)
	if err != nil {
		return 0, errs.FileWrite(dest, err)
	}
	defer file.Close()

	written, err := copyChunks(resp.Body, file, dest, reporter)
	if err != nil {
		return 0, err
	}

	reporter.Finish()
	return written, nil
}

// copyChunks streams response chunks to the file in arrival order,
// advancing the reporter by each chunk length.
func copyChunks(src io.Reader, dst io.Writer, dest string, reporter progress.Reporter) (int64, error) {
	buf := make([]byte, copyBufferSize)
	var written int64

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, classifyWriteError(dest, writeErr)
			}
			written += int64(n)
			reporter.Progress(int64(n))
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, errs.Interrupted(readErr.Error(), readErr)
		}
	}
}

// classifyRequestError maps transport-level failures onto the taxonomy.
func classifyRequestError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return errs.Cancelled()
	case errors.Is(err, context.DeadlineExceeded):
		return errs.Timeout(err.Error(), err)
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.Timeout(err.Error(), err)
	}

	// Name resolution failures are network-level, not connection-level:
	// no endpoint was ever reached.
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return errs.Network(err.Error(), err)
	}
	return errs.Connection(err.Error(), err)
}

// classifyWriteError separates unrecoverable filesystem failures, which are
// fatal, from transient write problems, which retry as network-class.
func classifyWriteError(dest string, err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, os.ErrPermission) {
		return errs.FileWrite(dest, err)
	}
	return errs.Interrupted(err.Error(), err)
}
