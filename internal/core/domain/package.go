package domain

import (
	"maps"
	"slices"
	"strings"
)

// Compression identifies the archive format of a build artifact.
type Compression int

const (
	// CompressionGzip is a .tar.gz artifact.
	CompressionGzip Compression = iota
	// CompressionXz is a .tar.xz artifact.
	CompressionXz
	// CompressionZstd is a .tar.zst artifact.
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gz"
	case CompressionXz:
		return "xz"
	case CompressionZstd:
		return "zst"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// SplitCompression returns name without a trailing ".gz", ".xz" or ".zst" extension and the
// compression it denotes. ok is false when name has no such extension.
func SplitCompression(name string) (base string, c Compression, ok bool) {
	for _, kind := range []Compression{CompressionGzip, CompressionXz, CompressionZstd} {
		if trimmed, found := strings.CutSuffix(name, "."+kind.String()); found {
			return trimmed, kind, true
		}
	}
	return name, 0, false
}

// DigestAlgorithm names the hash function that produced a Digest.
type DigestAlgorithm int

// DigestSHA256 is the only algorithm used by v2 manifests.
const DigestSHA256 DigestAlgorithm = iota

func (a DigestAlgorithm) String() string {
	if a == DigestSHA256 {
		return "sha256"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (a DigestAlgorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Artifact is one downloadable archive of a package build.
type Artifact struct {
	Compression Compression
	URL         string
	Digests     map[DigestAlgorithm]Digest
}

// PackageBuild is an available build of a package for one target.
type PackageBuild struct {
	// Artifacts are ordered by compression kind.
	Artifacts []Artifact
}

func newPackageBuild(raw RawPackageBuild) *PackageBuild {
	if !raw.Available {
		return nil
	}
	build := &PackageBuild{Artifacts: make([]Artifact, 0, len(raw.Artifacts))}
	for _, kind := range slices.Sorted(maps.Keys(raw.Artifacts)) {
		ref := raw.Artifacts[kind]
		build.Artifacts = append(build.Artifacts, Artifact{
			Compression: kind,
			URL:         ref.URL,
			Digests:     map[DigestAlgorithm]Digest{DigestSHA256: ref.Hash},
		})
	}
	return build
}

// BuildTable holds the builds of a package. It is either IndependentBuilds or DependentBuilds.
// A nil *PackageBuild marks a target that is declared but unavailable.
type BuildTable interface {
	isBuildTable()
}

// IndependentBuilds is the build table of a package with one build valid on every target.
type IndependentBuilds struct {
	Build *PackageBuild
}

// DependentBuilds is the build table of a package with a build per target triple.
type DependentBuilds map[Triple]*PackageBuild

func (IndependentBuilds) isBuildTable() {}
func (DependentBuilds) isBuildTable()   {}

// Targets returns the declared triples in text order.
func (d DependentBuilds) Targets() []Triple {
	targets := slices.Collect(maps.Keys(d))
	slices.SortFunc(targets, func(a, b Triple) int {
		return strings.Compare(a.String(), b.String())
	})
	return targets
}

// PackageVersion is the release metadata of an installable package.
type PackageVersion struct {
	Version   string
	GitCommit Digest
}

// Package is a manifest package with its build table.
type Package struct {
	Name string
	// Version is nil for packages that only anchor dependencies.
	Version *PackageVersion
	Builds  BuildTable
}

// IsTargetIndependent reports whether the package has a single build valid on every target.
func (p *Package) IsTargetIndependent() bool {
	_, ok := p.Builds.(IndependentBuilds)
	return ok
}

// Build returns the build of the package for target.
// A universal lookup against a target-specific package fails with ErrPackageNotTargetIndependent,
// an undeclared triple with ErrPackageUnknown and an unavailable build with ErrPackageUnavailable.
func (p *Package) Build(target SupportedTarget) (*PackageBuild, error) {
	switch builds := p.Builds.(type) {
	case IndependentBuilds:
		if builds.Build == nil {
			return nil, newError(ErrPackageUnavailable, p.Name, target.String())
		}
		return builds.Build, nil
	case DependentBuilds:
		triple, ok := target.Triple()
		if !ok {
			return nil, newError(ErrPackageNotTargetIndependent, p.Name, "")
		}
		build, declared := builds[triple]
		if !declared {
			return nil, newError(ErrPackageUnknown, p.Name, triple.String())
		}
		if build == nil {
			return nil, newError(ErrPackageUnavailable, p.Name, triple.String())
		}
		return build, nil
	default:
		return nil, newError(ErrPackageUnknown, p.Name, target.String())
	}
}

func newPackage(name string, raw RawPackage) (*Package, error) {
	pkg := &Package{Name: name}
	if raw.Version != nil && raw.GitCommitHash != nil {
		pkg.Version = &PackageVersion{Version: *raw.Version, GitCommit: *raw.GitCommitHash}
	}

	if universal, ok := raw.Targets[UniversalTargetName]; ok && len(raw.Targets) == 1 {
		pkg.Builds = IndependentBuilds{Build: newPackageBuild(universal)}
		return pkg, nil
	}

	builds := make(DependentBuilds, len(raw.Targets))
	for _, key := range sortedKeys(raw.Targets) {
		if key == UniversalTargetName {
			return nil, newError(ErrConflictingTargetDependence, name, "")
		}
		triple, err := ParseTriple(key)
		if err != nil {
			return nil, structuralError("pkg."+name+".target."+key, "%v", err)
		}
		builds[triple] = newPackageBuild(raw.Targets[key])
	}
	pkg.Builds = builds
	return pkg, nil
}
