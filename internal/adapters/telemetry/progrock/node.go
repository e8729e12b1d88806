package progrock

import (
	"context"
	"os"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the concrete recorder node, needed by the CLI to
	// adjust output.
	NodeID graft.ID = "adapter.telemetry.recorder"
	// PortNodeID is the unique identifier for the ports.Telemetry node.
	PortNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return New(os.Stderr), nil
		},
	})

	graft.Register(graft.Node[ports.Telemetry]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			rec, err := graft.Dep[*Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return rec, nil
		},
	})
}
