package domain

import "time"

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile is a reproducible snapshot of the downloads resolved from one manifest.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// ManifestVersion and Date identify the manifest the plan was resolved against.
	ManifestVersion string
	Date            time.Time

	// Hosts holds one plan per host, in the order the hosts were requested.
	Hosts []HostPlan

	// Fingerprint identifies the set of artifacts across all hosts. It is empty until stamped.
	Fingerprint string
}

// HostPlan is the resolved download list for a single host.
type HostPlan struct {
	Host     Triple
	Packages []DownloadablePackage
}

// ArtifactIdentifiers returns the unique identifier of every planned package, in plan order.
// Packages without digests are skipped.
func (l *Lockfile) ArtifactIdentifiers() []Digest {
	var ids []Digest
	for _, plan := range l.Hosts {
		for _, pkg := range plan.Packages {
			if id := pkg.UniqueIdentifier(); !id.IsZero() {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// HostPackages is the package set resolved for a single host.
type HostPackages struct {
	Host     Triple
	Packages []PackageRef
}

// NewLockfile returns a Lockfile for plans resolved against m.
func NewLockfile(m *Manifest, plans []HostPlan) *Lockfile {
	return &Lockfile{
		Version:         LockfileVersion,
		ManifestVersion: m.Version(),
		Date:            m.Date(),
		Hosts:           plans,
	}
}
