package ports

import (
	"io"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
)

// Renderer defines the interface for printing results.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Packages(w io.Writer, format domain.OutputFormat, sets []domain.HostPackages) error
	Lockfile(w io.Writer, format domain.OutputFormat, lock *domain.Lockfile) error
	Manifest(w io.Writer, format domain.OutputFormat, m *domain.Manifest) error
	Toolchain(w io.Writer, format domain.OutputFormat, tc domain.Toolchain) error
}
