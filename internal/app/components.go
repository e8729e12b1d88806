package app

import (
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/logger"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   *logger.Logger
	Recorder *progrock.Recorder
}
