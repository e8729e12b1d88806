package decoder_test

import (
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/decoder"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlManifest = `manifest-version = "2"
date = "2024-05-02"

[pkg.rust]
version = "1.78.0 (9b00956e5 2024-04-29)"
git_commit_hash = "9b00956e56009bab2aa15d7bff10916599e3d6d6"

[pkg.rust.target.x86_64-unknown-linux-gnu]
available = true
url = "https://static.rust-lang.org/dist/2024-05-02/rust-1.78.0-x86_64-unknown-linux-gnu.tar.gz"
hash = "1a1d6e7e3ad9d6bb2ae1bd0d40e5e5cb41c8af1a80a92bdaa8b37b1d56e5f8a9"

[[pkg.rust.target.x86_64-unknown-linux-gnu.components]]
pkg = "rustc"
target = "x86_64-unknown-linux-gnu"

[profiles]
minimal = ["rustc"]

[renames.rls]
to = "rls-preview"
`

func TestDecode_TOML(t *testing.T) {
	tree, err := decoder.New().Decode("channel-rust-1.78.0.toml", []byte(tomlManifest))
	require.NoError(t, err)

	assert.Equal(t, "2", tree["manifest-version"])
	assert.Equal(t, "2024-05-02", tree["date"])
	require.Contains(t, tree, "pkg")

	raw, err := domain.DecodeRawManifest(tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"rustc"}, raw.Profiles["minimal"])
	assert.Equal(t, "rls-preview", raw.Renames["rls"])

	build := raw.Packages["rust"].Targets["x86_64-unknown-linux-gnu"]
	assert.True(t, build.Available)
	require.Len(t, build.Components, 1)
	assert.Equal(t, "rustc", build.Components[0].Package)
}

func TestDecode_CompressedName(t *testing.T) {
	tree, err := decoder.New().Decode("channel-rust-stable.toml.xz", []byte(tomlManifest))
	require.NoError(t, err)
	assert.Equal(t, "2", tree["manifest-version"])
}

func TestDecode_URLName(t *testing.T) {
	tree, err := decoder.New().Decode("https://static.rust-lang.org/dist/channel-rust-stable.toml?cache=no", []byte(tomlManifest))
	require.NoError(t, err)
	assert.Equal(t, "2", tree["manifest-version"])
}

func TestDecode_YAML(t *testing.T) {
	doc := `
manifest-version: "2"
date: "2024-05-02"
profiles:
  minimal: [rustc]
pkg:
  rustc:
    target:
      "*":
        available: false
`
	tree, err := decoder.New().Decode("manifest.yaml", []byte(doc))
	require.NoError(t, err)

	raw, err := domain.DecodeRawManifest(tree)
	require.NoError(t, err)
	assert.Equal(t, "2", raw.ManifestVersion)
	assert.False(t, raw.Packages["rustc"].Targets["*"].Available)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"manifest-version": "2", "date": "2024-05-02", "pkg": {}}`
	tree, err := decoder.New().Decode("manifest.json", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "2", tree["manifest-version"])
}

func TestDecode_Errors(t *testing.T) {
	d := decoder.New()

	_, err := d.Decode("manifest.ini", []byte("a=b"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedDocument.Error())

	_, err = d.Decode("channel.toml", []byte("manifest-version = "))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDecodeFailed.Error())

	_, err = d.Decode("manifest.yaml", []byte("pkg: [unterminated"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDecodeFailed.Error())
}
