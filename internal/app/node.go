package app

import (
	"context"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/cas"                 //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/decoder"             //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/fs"                  //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/render"              //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/source"              //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/engine/planner"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			source.NodeID,
			decoder.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			planner.NodeID,
			render.NodeID,
			progrock.PortNodeID,
			logger.PortNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	src, err := graft.Dep[ports.ManifestSource](ctx)
	if err != nil {
		return nil, err
	}

	dec, err := graft.Dep[ports.DocumentDecoder](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.ManifestCache](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, src, dec, cache, hasher, plan, renderer, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*progrock.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Recorder: recorder,
	}, nil
}
