package domain

import (
	"maps"
	"slices"
)

// InstallSpec selects what to install on a host: a profile, extra components and extra
// standard-library targets.
type InstallSpec struct {
	Profile    string
	Components []string
	Targets    []Triple
}

// PackageSet is a set of resolved packages.
type PackageSet map[PackageRef]struct{}

// Add inserts ref into the set.
func (s PackageSet) Add(ref PackageRef) {
	s[ref] = struct{}{}
}

// Contains reports whether ref is in the set.
func (s PackageSet) Contains(ref PackageRef) bool {
	_, ok := s[ref]
	return ok
}

// Sorted returns the members ordered by name then target.
func (s PackageSet) Sorted() []PackageRef {
	return slices.SortedFunc(maps.Keys(s), PackageRef.Compare)
}

// DownloadablePackage is a package build ready to be fetched.
type DownloadablePackage struct {
	Name      string
	Version   string
	GitCommit Digest
	Target    SupportedTarget
	Artifacts []Artifact
}

// UniqueIdentifier returns the largest digest across all artifacts of the package, or the zero
// Digest when it has none.
func (p DownloadablePackage) UniqueIdentifier() Digest {
	var largest Digest
	for _, artifact := range p.Artifacts {
		for _, d := range artifact.Digests {
			if d.Compare(largest) > 0 {
				largest = d
			}
		}
	}
	return largest
}

// StdPackageName returns the component name of the standard library for target.
func StdPackageName(target Triple) string {
	return "rust-std-" + target.String()
}

// Resolve maps a component name typed by a user on host to its package.
func (m *Manifest) Resolve(host Triple, component string) (PackageRef, error) {
	names, ok := m.names[host]
	if !ok {
		return PackageRef{}, newError(ErrUnknownTarget, "", host.String())
	}
	ref, ok := names[component]
	if !ok {
		return PackageRef{}, newError(ErrPackageUnknown, component, host.String())
	}
	return ref, nil
}

// FindPackagesForInstall expands spec into the packages to install on host.
// Profile entries unknown on host are skipped; explicit components and targets must resolve.
func (m *Manifest) FindPackagesForInstall(host Triple, spec InstallSpec) (PackageSet, error) {
	profile, ok := m.profiles[spec.Profile]
	if !ok {
		return nil, newError(ErrUnknownProfile, spec.Profile, "")
	}

	set := make(PackageSet)
	for _, component := range profile {
		ref, err := m.Resolve(host, component)
		if err != nil {
			if IsPackageUnknown(err) {
				continue
			}
			return nil, err
		}
		set.Add(ref)
	}

	for _, component := range spec.Components {
		ref, err := m.Resolve(host, component)
		if err != nil {
			return nil, err
		}
		set.Add(ref)
	}

	for _, target := range spec.Targets {
		ref, err := m.Resolve(host, StdPackageName(target))
		if err != nil {
			return nil, err
		}
		set.Add(ref)
	}

	return set, nil
}

// FindDownloadsForInstall expands spec into the package builds to fetch for host, ordered by
// package name then target.
func (m *Manifest) FindDownloadsForInstall(host Triple, spec InstallSpec) ([]DownloadablePackage, error) {
	set, err := m.FindPackagesForInstall(host, spec)
	if err != nil {
		return nil, err
	}

	downloads := make([]DownloadablePackage, 0, len(set))
	for _, ref := range set.Sorted() {
		pkg, err := m.Package(ref.Name)
		if err != nil {
			return nil, err
		}
		build, err := pkg.Build(ref.Target)
		if err != nil {
			return nil, err
		}
		if pkg.Version == nil {
			return nil, newError(ErrMissingPackageVersion, pkg.Name, "")
		}
		downloads = append(downloads, DownloadablePackage{
			Name:      pkg.Name,
			Version:   pkg.Version.Version,
			GitCommit: pkg.Version.GitCommit,
			Target:    ref.Target,
			Artifacts: slices.Clone(build.Artifacts),
		})
	}
	return downloads, nil
}
