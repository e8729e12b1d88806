package domain_test

import (
	"testing"
	"time"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockfile(t *testing.T) {
	m := newManifest(t, sampleTree())
	host := triple(t, linux)

	downloads, err := m.FindDownloadsForInstall(host, domain.InstallSpec{Profile: "minimal"})
	require.NoError(t, err)

	lock := domain.NewLockfile(m, []domain.HostPlan{{Host: host, Packages: downloads}})
	assert.Equal(t, domain.LockfileVersion, lock.Version)
	assert.Equal(t, "2", lock.ManifestVersion)
	assert.Equal(t, time.Date(2022, 11, 30, 0, 0, 0, 0, time.UTC), lock.Date)
	assert.Empty(t, lock.Fingerprint)

	ids := lock.ArtifactIdentifiers()
	require.Len(t, ids, 3)
	assert.Equal(t, hash("3"), ids[0].String())
	assert.Equal(t, hash("6"), ids[1].String())
	assert.Equal(t, hash("2"), ids[2].String())
}

func TestLockfile_ArtifactIdentifiersSkipsEmpty(t *testing.T) {
	lock := &domain.Lockfile{Hosts: []domain.HostPlan{{
		Host: triple(t, linux),
		Packages: []domain.DownloadablePackage{
			{Name: "empty"},
			{Name: "rustc", Artifacts: []domain.Artifact{{
				Compression: domain.CompressionXz,
				Digests:     map[domain.DigestAlgorithm]domain.Digest{domain.DigestSHA256: domain.MustParseDigest(hash("a"))},
			}}},
		},
	}}}

	ids := lock.ArtifactIdentifiers()
	require.Len(t, ids, 1)
	assert.Equal(t, hash("a"), ids[0].String())
}
