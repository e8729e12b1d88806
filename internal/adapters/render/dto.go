package render

import (
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/opencontainers/go-digest"
)

type lockfileDTO struct {
	Version         int           `json:"version" yaml:"version"`
	ManifestVersion string        `json:"manifest_version" yaml:"manifest_version"`
	Date            string        `json:"date" yaml:"date"`
	Fingerprint     string        `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Hosts           []hostPlanDTO `json:"hosts" yaml:"hosts"`
}

type hostPlanDTO struct {
	Host     string       `json:"host" yaml:"host"`
	Packages []packageDTO `json:"packages" yaml:"packages"`
}

type packageDTO struct {
	Name      string        `json:"name" yaml:"name"`
	Version   string        `json:"version" yaml:"version"`
	GitCommit string        `json:"git_commit" yaml:"git_commit"`
	Target    string        `json:"target" yaml:"target"`
	ID        string        `json:"id,omitempty" yaml:"id,omitempty"`
	Artifacts []artifactDTO `json:"artifacts" yaml:"artifacts"`
}

type artifactDTO struct {
	Compression string `json:"compression" yaml:"compression"`
	URL         string `json:"url" yaml:"url"`
	Digest      string `json:"digest" yaml:"digest"`
}

type hostPackagesDTO struct {
	Host     string   `json:"host" yaml:"host"`
	Packages []string `json:"packages" yaml:"packages"`
}

type manifestDTO struct {
	ManifestVersion string              `json:"manifest_version" yaml:"manifest_version"`
	Date            string              `json:"date" yaml:"date"`
	Hosts           []string            `json:"hosts" yaml:"hosts"`
	Profiles        map[string][]string `json:"profiles" yaml:"profiles"`
	Renames         map[string]string   `json:"renames,omitempty" yaml:"renames,omitempty"`
	Packages        []string            `json:"packages" yaml:"packages"`
	Artifacts       []string            `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

type toolchainDTO struct {
	Name        string `json:"name" yaml:"name"`
	Channel     string `json:"channel" yaml:"channel"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty"`
	Pinned      bool   `json:"pinned" yaml:"pinned"`
	ManifestURL string `json:"manifest_url" yaml:"manifest_url"`
}

// sha256Digest renders d in the algorithm-prefixed form, e.g. "sha256:ab12...".
func sha256Digest(d domain.Digest) string {
	if d.IsZero() {
		return ""
	}
	return digest.NewDigestFromEncoded(digest.SHA256, d.String()).String()
}

func toLockfileDTO(lock *domain.Lockfile) lockfileDTO {
	dto := lockfileDTO{
		Version:         lock.Version,
		ManifestVersion: lock.ManifestVersion,
		Date:            lock.Date.Format(domain.DateLayout),
		Fingerprint:     lock.Fingerprint,
		Hosts:           make([]hostPlanDTO, 0, len(lock.Hosts)),
	}
	for _, plan := range lock.Hosts {
		host := hostPlanDTO{Host: plan.Host.String(), Packages: make([]packageDTO, 0, len(plan.Packages))}
		for _, pkg := range plan.Packages {
			host.Packages = append(host.Packages, toPackageDTO(pkg))
		}
		dto.Hosts = append(dto.Hosts, host)
	}
	return dto
}

func toPackageDTO(pkg domain.DownloadablePackage) packageDTO {
	dto := packageDTO{
		Name:      pkg.Name,
		Version:   pkg.Version,
		GitCommit: pkg.GitCommit.String(),
		Target:    pkg.Target.String(),
		ID:        sha256Digest(pkg.UniqueIdentifier()),
		Artifacts: make([]artifactDTO, 0, len(pkg.Artifacts)),
	}
	for _, artifact := range pkg.Artifacts {
		dto.Artifacts = append(dto.Artifacts, artifactDTO{
			Compression: artifact.Compression.String(),
			URL:         artifact.URL,
			Digest:      sha256Digest(artifact.Digests[domain.DigestSHA256]),
		})
	}
	return dto
}

func toHostPackagesDTO(sets []domain.HostPackages) []hostPackagesDTO {
	dtos := make([]hostPackagesDTO, 0, len(sets))
	for _, set := range sets {
		dto := hostPackagesDTO{Host: set.Host.String(), Packages: make([]string, 0, len(set.Packages))}
		for _, ref := range set.Packages {
			dto.Packages = append(dto.Packages, ref.String())
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func toManifestDTO(m *domain.Manifest) manifestDTO {
	dto := manifestDTO{
		ManifestVersion: m.Version(),
		Date:            m.Date().Format(domain.DateLayout),
		Profiles:        make(map[string][]string),
		Renames:         m.Renames(),
		Packages:        m.PackageNames(),
		Artifacts:       m.ArtifactNames(),
	}
	for _, host := range m.Hosts() {
		dto.Hosts = append(dto.Hosts, host.String())
	}
	for _, name := range m.Profiles() {
		// Names come from Profiles, so the lookup cannot fail.
		components, _ := m.Profile(name)
		dto.Profiles[name] = components
	}
	return dto
}

func toToolchainDTO(tc domain.Toolchain) toolchainDTO {
	dto := toolchainDTO{
		Name:        tc.String(),
		Channel:     tc.Channel.String(),
		Pinned:      tc.IsPinned(),
		ManifestURL: tc.ManifestURL(),
	}
	if tc.Date != nil {
		dto.Date = tc.Date.Format(domain.DateLayout)
	}
	if tc.Host != nil {
		dto.Host = tc.Host.String()
	}
	return dto
}
