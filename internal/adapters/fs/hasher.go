// Package fs provides content hashing and file helpers.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of manifest documents and cache keys.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Sum returns the hex XXHash of data.
func (h *Hasher) Sum(data []byte) string {
	return format(xxhash.Sum64(data))
}

// Key returns the hex XXHash of s. It is used to derive file names from URLs and paths.
func (h *Hasher) Key(s string) string {
	return format(xxhash.Sum64String(s))
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return format(hasher.Sum64()), nil
}

func format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
