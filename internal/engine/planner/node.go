package planner

import (
	"context"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/logger"                      //nolint:depguard // Wired in engine wiring
	tprogrock "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tprogrock.PortNodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(telemetry, log), nil
		},
	})
}
