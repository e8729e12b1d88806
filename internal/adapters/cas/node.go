package cas

import (
	"context"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/fs"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest cache Graft node.
const NodeID graft.ID = "adapter.manifest_cache"

func init() {
	graft.Register(graft.Node[ports.ManifestCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ManifestCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := NewStore(domain.DefaultCachePath(), hasher)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
