// Package provider manages metadata extractors for supported media hosts.
package provider

import (
	"context"

	"github.com/vgrab-cli/vgrab/media"
)

// Extractor produces a rendition catalog for a remote resource.
type Extractor interface {
	// Name identifies the extractor in logs and CLI output.
	Name() string

	// Require verifies the extractor's external prerequisites are met.
	Require() error

	// Info extracts the full catalog for the resource at url.
	Info(ctx context.Context, url string) (*media.Info, error)
}

// Provider describes a registered extractor.
type Provider struct {
	ID   string
	Name string
	New  func() Extractor
}

func (p *Provider) String() string {
	return p.Name
}

var registry []*Provider

// Register adds a provider to the global registry. Called from extractor
// package init functions.
func Register(p *Provider) {
	registry = append(registry, p)
}

// All returns the registered providers in registration order.
func All() []*Provider {
	return registry
}

// Get finds a provider by id or name.
func Get(name string) (*Provider, bool) {
	for _, p := range registry {
		if p.ID == name || p.Name == name {
			return p, true
		}
	}
	return nil, false
}
