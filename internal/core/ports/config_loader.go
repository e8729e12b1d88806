package ports

import "github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"

// ConfigLoader defines the interface for loading the install request file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the request file at path. A missing file yields an empty request.
	Load(path string) (domain.Request, error)
}
