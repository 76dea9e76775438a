// Package errs defines the application's structured error taxonomy.
//
// Every failure surfaced to a caller is an *Error carrying a Kind plus the
// structured context relevant to that kind (path, HTTP status, attempt
// count, requested and available qualities). Retryability is a pure
// function of the kind, never of the message.
package errs

import (
	"fmt"
	"strings"
)

// Kind classifies an Error for programmatic handling.
type Kind int

const (
	// Network failures.
	KindHTTP Kind = iota + 1
	KindConnection
	KindTimeout
	KindNetwork

	// Resource failures.
	KindInvalidURL
	KindNotFound
	KindPrivate
	KindRegionBlocked
	KindExtraction

	// Filesystem failures.
	KindFileRead
	KindFileWrite
	KindDirCreate

	// Encoder failures.
	KindEncoderNotFound
	KindEncoderFailed

	// Download failures.
	KindNoStreams
	KindQualityNotAvailable
	KindInterrupted
	KindMaxRetries

	// Generic failures.
	KindCancelled
	KindOther
)

// Error is the single concrete error type used across the application.
type Error struct {
	Kind Kind

	// Message is the free-form detail for kinds that carry one.
	Message string

	// Status is the HTTP status code for KindHTTP.
	Status int

	// Path is the filesystem path for filesystem kinds.
	Path string

	// ID is the resource identifier for resource kinds.
	ID string

	// Attempts is the attempt count for KindMaxRetries.
	Attempts int

	// Requested and Available describe a failed quality selection.
	Requested string
	Available []string

	// Err is the wrapped underlying cause, when any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP request failed: %s (status code: %d)", e.Message, e.Status)
	case KindConnection:
		return fmt.Sprintf("Connection failed: %s", e.Message)
	case KindTimeout:
		return fmt.Sprintf("Request timeout: %s", e.Message)
	case KindNetwork:
		return fmt.Sprintf("Network error: %s", e.Message)
	case KindInvalidURL:
		return fmt.Sprintf("Invalid media URL: %s", e.Message)
	case KindNotFound:
		return fmt.Sprintf("Resource not found: %s", e.ID)
	case KindPrivate:
		return fmt.Sprintf("Resource is private: %s", e.ID)
	case KindRegionBlocked:
		return fmt.Sprintf("Resource is unavailable in your region: %s", e.ID)
	case KindExtraction:
		return fmt.Sprintf("Failed to extract media info: %s", e.Message)
	case KindFileRead:
		return fmt.Sprintf("Failed to read file: %s", e.Path)
	case KindFileWrite:
		return fmt.Sprintf("Failed to write file: %s", e.Path)
	case KindDirCreate:
		return fmt.Sprintf("Failed to create directory: %s", e.Path)
	case KindEncoderNotFound:
		return "FFmpeg not found. Please install FFmpeg and ensure it's in your PATH"
	case KindEncoderFailed:
		return fmt.Sprintf("FFmpeg command failed: %s", e.Message)
	case KindNoStreams:
		return fmt.Sprintf("No streams available for resource: %s", e.ID)
	case KindQualityNotAvailable:
		return fmt.Sprintf("Quality not available: %s (available: [%s])", e.Requested, strings.Join(e.Available, ", "))
	case KindInterrupted:
		return fmt.Sprintf("Download interrupted: %s", e.Message)
	case KindMaxRetries:
		return fmt.Sprintf("Download failed after %d attempts: %s", e.Attempts, e.Message)
	case KindCancelled:
		return "Operation cancelled by user"
	default:
		return e.Message
	}
}

// Unwrap exposes the underlying cause for errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a failure is transient enough to retry.
// Only connection-level, timeout, generic-network and interrupted-stream
// failures qualify. HTTP status failures are deliberately excluded even
// though some status codes are often transient.
func IsRetryable(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindTimeout, KindConnection, KindNetwork, KindInterrupted:
		return true
	default:
		return false
	}
}
