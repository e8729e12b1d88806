package decoder

import (
	"context"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the document decoder Graft node.
const NodeID graft.ID = "adapter.decoder"

func init() {
	graft.Register(graft.Node[ports.DocumentDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentDecoder, error) {
			return New(), nil
		},
	})
}
