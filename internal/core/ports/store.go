package ports

import "github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"

// ManifestCache defines the interface for storing fetched manifest documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestCache interface {
	// Get returns the cached entry and document for source.
	// Returns nil, nil, nil if not found.
	Get(source string) (*domain.CacheEntry, []byte, error)

	// Put stores a document fetched from source.
	Put(source string, pinned bool, data []byte) (domain.CacheEntry, error)
}
