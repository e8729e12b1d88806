// Package domain holds the rustup channel manifest model and the component resolution engine.
package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// RustPackage is the package that declares the components and extensions of every host.
const RustPackage = "rust"

// Component is a package and target declared for a host under the rust package.
type Component struct {
	Package   string
	Target    SupportedTarget
	Extension bool
}

// BundleFile is one file of a top-level artifact bundle.
type BundleFile struct {
	URL  string
	Hash Digest
}

// ArtifactBundle is a named set of standalone files, such as installers or source archives.
type ArtifactBundle struct {
	Name    string
	Targets map[SupportedTarget][]BundleFile
}

// Manifest is the validated channel manifest. It is immutable once built by NewManifest and
// may be shared between goroutines.
type Manifest struct {
	version    string
	date       time.Time
	profiles   map[string][]string
	renames    map[string]string
	aliases    map[string][]string
	artifacts  map[string]ArtifactBundle
	packages   map[string]*Package
	components map[Triple][]Component
	names      map[Triple]ComponentNameMap
}

// NewManifest builds the Manifest from a raw document.
func NewManifest(raw *RawManifest) (*Manifest, error) {
	m := &Manifest{
		version:    raw.ManifestVersion,
		date:       raw.Date,
		profiles:   make(map[string][]string, len(raw.Profiles)),
		renames:    make(map[string]string, len(raw.Renames)),
		aliases:    make(map[string][]string),
		artifacts:  make(map[string]ArtifactBundle, len(raw.Artifacts)),
		packages:   make(map[string]*Package, len(raw.Packages)),
		components: make(map[Triple][]Component),
		names:      make(map[Triple]ComponentNameMap),
	}

	for _, name := range sortedKeys(raw.Packages) {
		pkg, err := newPackage(name, raw.Packages[name])
		if err != nil {
			return nil, err
		}
		m.packages[name] = pkg
	}

	if err := m.collectComponents(raw); err != nil {
		return nil, err
	}

	for from, to := range raw.Renames {
		m.renames[from] = to
		m.aliases[to] = append(m.aliases[to], from)
	}
	for _, froms := range m.aliases {
		slices.Sort(froms)
	}

	for host, components := range m.components {
		m.names[host] = buildNameMap(host, components, m.aliases)
	}

	for name, profile := range raw.Profiles {
		m.profiles[name] = slices.Clone(profile)
	}

	for _, name := range sortedKeys(raw.Artifacts) {
		bundle, err := newArtifactBundle(name, raw.Artifacts[name])
		if err != nil {
			return nil, err
		}
		m.artifacts[name] = bundle
	}

	return m, nil
}

func (m *Manifest) collectComponents(raw *RawManifest) error {
	rust, ok := raw.Packages[RustPackage]
	if !ok {
		return ErrRustMissing
	}
	if m.packages[RustPackage].IsTargetIndependent() {
		return structuralError("pkg.rust.target", "rust must be declared per target")
	}

	for _, key := range sortedKeys(rust.Targets) {
		host := MustParseTriple(key)
		build := rust.Targets[key]
		path := "pkg.rust.target." + key

		var components []Component
		seen := make(map[Component]bool)
		for _, list := range []struct {
			field     string
			entries   []RawComponent
			extension bool
		}{
			{"components", build.Components, false},
			{"extensions", build.Extensions, true},
		} {
			for i, entry := range list.entries {
				target, err := ParseSupportedTarget(entry.Target)
				if err != nil {
					return structuralError(fmt.Sprintf("%s.%s[%d].target", path, list.field, i), "%v", err)
				}
				c := Component{Package: entry.Package, Target: target, Extension: list.extension}
				if seen[c] {
					continue
				}
				seen[c] = true
				components = append(components, c)
			}
		}
		m.components[host] = components
	}
	return nil
}

func newArtifactBundle(name string, raw RawArtifact) (ArtifactBundle, error) {
	bundle := ArtifactBundle{Name: name, Targets: make(map[SupportedTarget][]BundleFile, len(raw.Targets))}
	for _, key := range sortedKeys(raw.Targets) {
		target, err := ParseSupportedTarget(key)
		if err != nil {
			return ArtifactBundle{}, structuralError("artifacts."+name+".target."+key, "%v", err)
		}
		files := make([]BundleFile, 0, len(raw.Targets[key]))
		for _, ref := range raw.Targets[key] {
			files = append(files, BundleFile{URL: ref.URL, Hash: ref.Hash})
		}
		bundle.Targets[target] = files
	}
	return bundle, nil
}

// Version returns the manifest format version.
func (m *Manifest) Version() string {
	return m.version
}

// Date returns the release date.
func (m *Manifest) Date() time.Time {
	return m.date
}

// Hosts returns every host declared under the rust package, in text order.
func (m *Manifest) Hosts() []Triple {
	hosts := slices.Collect(maps.Keys(m.components))
	slices.SortFunc(hosts, func(a, b Triple) int {
		return strings.Compare(a.String(), b.String())
	})
	return hosts
}

// Components returns the components and extensions declared for host.
func (m *Manifest) Components(host Triple) ([]Component, error) {
	components, ok := m.components[host]
	if !ok {
		return nil, newError(ErrUnknownTarget, "", host.String())
	}
	return slices.Clone(components), nil
}

// Profiles returns the profile names in order.
func (m *Manifest) Profiles() []string {
	return sortedKeys(m.profiles)
}

// Profile returns the component names listed by a profile.
func (m *Manifest) Profile(name string) ([]string, error) {
	profile, ok := m.profiles[name]
	if !ok {
		return nil, newError(ErrUnknownProfile, name, "")
	}
	return slices.Clone(profile), nil
}

// Package returns the package with the given name.
func (m *Manifest) Package(name string) (*Package, error) {
	pkg, ok := m.packages[name]
	if !ok {
		return nil, newError(ErrPackageUnknown, name, "")
	}
	return pkg, nil
}

// PackageNames returns every package name in order.
func (m *Manifest) PackageNames() []string {
	return sortedKeys(m.packages)
}

// Renames returns a copy of the rename table, keyed by legacy name.
func (m *Manifest) Renames() map[string]string {
	return maps.Clone(m.renames)
}

// ArtifactNames returns the names of the top-level artifact bundles in order.
func (m *Manifest) ArtifactNames() []string {
	return sortedKeys(m.artifacts)
}

// Artifacts returns the named artifact bundle.
func (m *Manifest) Artifacts(name string) (ArtifactBundle, bool) {
	bundle, ok := m.artifacts[name]
	return bundle, ok
}
