package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrIncorrectStructure is returned when the manifest document does not match the expected schema.
	ErrIncorrectStructure = zerr.New("manifest had incorrect structure")

	// ErrConflictingTargetDependence is returned when a package lists both the universal target
	// and specific targets.
	ErrConflictingTargetDependence = zerr.New("package listed as both target-dependent and independent")

	// ErrRustMissing is returned when the manifest has no "rust" package.
	ErrRustMissing = zerr.New(`package "rust" was missing from manifest`)

	// ErrPackageUnknown is returned when a component or package cannot be found.
	ErrPackageUnknown = zerr.New("unknown package")

	// ErrUnknownTarget is returned when a host platform was never declared in the manifest.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownProfile is returned when the requested profile is not declared in the manifest.
	ErrUnknownProfile = zerr.New("unknown profile")

	// ErrPackageNotTargetIndependent is returned when a target-specific package is looked up
	// without a target.
	ErrPackageNotTargetIndependent = zerr.New("attempted to treat package as architecture independent")

	// ErrPackageUnavailable is returned when a package is declared for a target but marked unavailable.
	ErrPackageUnavailable = zerr.New("package unavailable for target")

	// ErrMissingPackageVersion is returned when a package carries no version metadata.
	ErrMissingPackageVersion = zerr.New("package has no version")

	// ErrTargetParse is returned when a platform triple cannot be parsed.
	ErrTargetParse = zerr.New("failed to parse target triple")

	// ErrChannelParse is returned when a release channel cannot be parsed.
	ErrChannelParse = zerr.New("failed to parse channel")

	// ErrInvalidDigest is returned when a hex digest cannot be parsed.
	ErrInvalidDigest = zerr.New("invalid digest")

	// ErrUnknownFormat is returned when an output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrUnsupportedDocument is returned when a manifest document has an unrecognised extension.
	ErrUnsupportedDocument = zerr.New("unsupported manifest document format")

	// ErrDecodeFailed is returned when a manifest document cannot be parsed.
	ErrDecodeFailed = zerr.New("failed to decode manifest document")

	// ErrFetchFailed is returned when a manifest cannot be retrieved.
	ErrFetchFailed = zerr.New("failed to fetch manifest")

	// ErrDecompressFailed is returned when a compressed manifest cannot be read.
	ErrDecompressFailed = zerr.New("failed to decompress manifest")

	// ErrNoManifestSource is returned when neither a manifest location nor a toolchain is given.
	ErrNoManifestSource = zerr.New("no manifest or toolchain specified")

	// ErrNoHosts is returned when no host can be determined for resolution.
	ErrNoHosts = zerr.New("no host specified")

	// ErrCacheCorrupt is returned when the manifest cache index cannot be read.
	ErrCacheCorrupt = zerr.New("manifest cache is corrupt")

	// ErrInvalidConfig is returned when the request file cannot be parsed.
	ErrInvalidConfig = zerr.New("invalid request file")

	// ErrUnknownLogLevel is returned when a log level name is not recognised.
	ErrUnknownLogLevel = zerr.New("unknown log level")
)

// LookupError describes a failure concerning one named manifest entry (a package, component,
// profile or host). It unwraps to its sentinel kind so callers can classify it with errors.Is
// regardless of any wrapping added on the way out.
type LookupError struct {
	Kind   error
	Name   string
	Target string
}

func (e *LookupError) Error() string {
	switch {
	case e.Name != "" && e.Target != "":
		return fmt.Sprintf("%s: %s (target %s)", e.Kind, e.Name, e.Target)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	case e.Target != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Target)
	default:
		return e.Kind.Error()
	}
}

// Unwrap returns the sentinel kind.
func (e *LookupError) Unwrap() error {
	return e.Kind
}

func newError(kind error, name, target string) error {
	return &LookupError{Kind: kind, Name: name, Target: target}
}

// IsPackageUnknown reports whether err is the only error kind tolerated while expanding a profile.
func IsPackageUnknown(err error) bool {
	return errors.Is(err, ErrPackageUnknown)
}

// StructureError is a schema violation at a field of the manifest document.
type StructureError struct {
	// Path locates the field, e.g. "pkg.rustc.target.x86_64-unknown-linux-gnu.hash".
	Path   string
	Detail string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIncorrectStructure, e.Path, e.Detail)
}

// Unwrap returns ErrIncorrectStructure.
func (e *StructureError) Unwrap() error {
	return ErrIncorrectStructure
}

func structuralError(path, format string, args ...any) error {
	return &StructureError{Path: path, Detail: fmt.Sprintf(format, args...)}
}
