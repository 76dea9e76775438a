// Package network provides pre-configured, optimized HTTP clients for media host communication.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application for short metadata requests.
// It is configured with increased concurrency limits and reasonable timeouts.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Download is the HTTP client used for streaming media transfers.
// It deliberately carries no overall timeout: large files legitimately take
// longer than any fixed bound, and cancellation is handled per-request
// through the context. Header timeouts still apply at the transport level.
var Download = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
