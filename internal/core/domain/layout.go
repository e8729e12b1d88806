package domain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// AppDirName is the name of the application directory inside the user cache directory.
	AppDirName = "rtm"

	// ManifestCacheDirName is the directory holding cached manifest documents.
	ManifestCacheDirName = "manifests"

	// RequestFileName is the default install request file.
	RequestFileName = "rtm.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the manifest cache directory under the user cache directory,
// falling back to a dot directory in the working directory.
func DefaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join("."+AppDirName, ManifestCacheDirName)
	}
	return filepath.Join(base, AppDirName, ManifestCacheDirName)
}

// CurrentHost returns the triple of the running platform, and false when it has no
// well-known rustup host triple.
func CurrentHost() (Triple, bool) {
	var s string
	switch runtime.GOOS + "/" + runtime.GOARCH {
	case "linux/amd64":
		s = "x86_64-unknown-linux-gnu"
	case "linux/arm64":
		s = "aarch64-unknown-linux-gnu"
	case "darwin/amd64":
		s = "x86_64-apple-darwin"
	case "darwin/arm64":
		s = "aarch64-apple-darwin"
	case "windows/amd64":
		s = "x86_64-pc-windows-msvc"
	case "windows/arm64":
		s = "aarch64-pc-windows-msvc"
	default:
		return Triple{}, false
	}
	return MustParseTriple(s), true
}

// IsRemote reports whether location is an http or https URL rather than a local path.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// DocumentName returns location without the query string or fragment of a URL, so that its
// extension can be inspected.
func DocumentName(location string) string {
	if !IsRemote(location) {
		return location
	}
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		return location[:i]
	}
	return location
}
