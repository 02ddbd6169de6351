package provider

import "context"

// Provider stores published script catalogs.
// Keys are plain strings so implementations can decide their own layout.
type Provider interface {
	// Upload publishes a local catalog file (source) under a remote key (target).
	Upload(ctx context.Context, source, target string) error

	// Download fetches a published catalog (source) to a local path (target).
	Download(ctx context.Context, source, target string) error

	// Name returns the provider identifier (e.g. "azure").
	Name() string
}
