// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/cas"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/config"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/decoder"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/fs"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/logger"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/render"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/source"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/app"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/engine/planner"
)
