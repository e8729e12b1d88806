package ports

import "context"

// ManifestSource defines the interface for retrieving manifest documents.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ManifestSource interface {
	// Fetch returns the decompressed bytes at location, a local path or an http(s) URL.
	Fetch(ctx context.Context, location string) ([]byte, error)
}
