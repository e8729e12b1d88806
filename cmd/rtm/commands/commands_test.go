package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/cmd/rtm/commands"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/cas"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/config"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/decoder"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/fs"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/logger"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/render"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/source"
	tprogrock "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/app"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/build"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/engine/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelManifest = `manifest-version = "2"
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

[[pkg.rust.target.x86_64-unknown-linux-gnu.extensions]]
pkg = "rust-src"
target = "*"

[pkg.rustc]
version = "1.78.0 (9b00956e5 2024-04-29)"
git_commit_hash = "9b00956e56009bab2aa15d7bff10916599e3d6d6"

[pkg.rustc.target.x86_64-unknown-linux-gnu]
available = true
url = "https://static.rust-lang.org/dist/2024-05-02/rustc-1.78.0-x86_64-unknown-linux-gnu.tar.gz"
hash = "2b2d6e7e3ad9d6bb2ae1bd0d40e5e5cb41c8af1a80a92bdaa8b37b1d56e5f8a9"
xz_url = "https://static.rust-lang.org/dist/2024-05-02/rustc-1.78.0-x86_64-unknown-linux-gnu.tar.xz"
xz_hash = "3c2d6e7e3ad9d6bb2ae1bd0d40e5e5cb41c8af1a80a92bdaa8b37b1d56e5f8a9"

[pkg.rust-src]
version = "1.78.0 (9b00956e5 2024-04-29)"
git_commit_hash = "9b00956e56009bab2aa15d7bff10916599e3d6d6"

[pkg.rust-src.target."*"]
available = true
url = "https://static.rust-lang.org/dist/2024-05-02/rust-src-1.78.0.tar.gz"
hash = "4d2d6e7e3ad9d6bb2ae1bd0d40e5e5cb41c8af1a80a92bdaa8b37b1d56e5f8a9"

[profiles]
minimal = ["rustc"]
default = ["rustc", "rustfmt"]
`

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	log := logger.New()
	log.SetOutput(io.Discard)
	hasher := fs.NewHasher()
	cache, err := cas.NewStore(t.TempDir(), hasher)
	require.NoError(t, err)
	recorder := tprogrock.New(io.Discard)

	a := app.New(
		config.NewLoader(log),
		source.New(),
		decoder.New(),
		cache,
		hasher,
		planner.New(recorder, log),
		render.New(),
		recorder,
		log,
	)

	cli := commands.New(&app.Components{App: a, Logger: log, Recorder: recorder})
	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, &out
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "channel-rust-stable.toml")
	require.NoError(t, os.WriteFile(path, []byte(channelManifest), 0o600))
	return path
}

func TestPackages(t *testing.T) {
	cli, out := newCLI(t)
	manifest := writeManifest(t)

	cli.SetArgs([]string{
		"packages", "--manifest", manifest, "--host", "x86_64-unknown-linux-gnu",
		"--spec", filepath.Join(t.TempDir(), "missing.yaml"), "-c", "rust-src",
	})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "x86_64-unknown-linux-gnu")
	assert.Contains(t, out.String(), "rustc")
	assert.Contains(t, out.String(), "rust-src")
}

func TestPackages_UnknownComponent(t *testing.T) {
	cli, _ := newCLI(t)
	manifest := writeManifest(t)

	cli.SetArgs([]string{
		"packages", "--manifest", manifest, "--host", "x86_64-unknown-linux-gnu",
		"--spec", filepath.Join(t.TempDir(), "missing.yaml"), "-c", "miri",
	})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageUnknown.Error())
}

func TestDownloads_JSON(t *testing.T) {
	cli, out := newCLI(t)
	manifest := writeManifest(t)

	cli.SetArgs([]string{
		"downloads", "--manifest", manifest, "--host", "x86_64-unknown-linux-gnu",
		"--spec", filepath.Join(t.TempDir(), "missing.yaml"), "--profile", "minimal", "-o", "json",
	})
	require.NoError(t, cli.Execute(context.Background()))

	var lock struct {
		ManifestVersion string `json:"manifest_version"`
		Fingerprint     string `json:"fingerprint"`
		Hosts           []struct {
			Host     string `json:"host"`
			Packages []struct {
				Name      string `json:"name"`
				Artifacts []struct {
					Compression string `json:"compression"`
				} `json:"artifacts"`
			} `json:"packages"`
		} `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &lock))
	assert.Equal(t, "2", lock.ManifestVersion)
	assert.NotEmpty(t, lock.Fingerprint)
	require.Len(t, lock.Hosts, 1)
	assert.Equal(t, "x86_64-unknown-linux-gnu", lock.Hosts[0].Host)
	require.Len(t, lock.Hosts[0].Packages, 1)
	assert.Equal(t, "rustc", lock.Hosts[0].Packages[0].Name)
	require.Len(t, lock.Hosts[0].Packages[0].Artifacts, 2)
	assert.Equal(t, "gz", lock.Hosts[0].Packages[0].Artifacts[0].Compression)
	assert.Equal(t, "xz", lock.Hosts[0].Packages[0].Artifacts[1].Compression)
}

func TestDownloads_RequestFile(t *testing.T) {
	cli, out := newCLI(t)
	manifest := writeManifest(t)

	spec := filepath.Join(t.TempDir(), "rtm.yaml")
	content := `version: "1"
manifest: ` + manifest + `
hosts: [x86_64-unknown-linux-gnu]
profile: minimal
`
	require.NoError(t, os.WriteFile(spec, []byte(content), 0o600))

	cli.SetArgs([]string{"downloads", "--spec", spec, "-o", "yaml"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "manifest_version: \"2\"")
	assert.Contains(t, out.String(), "rustc-1.78.0-x86_64-unknown-linux-gnu.tar.xz")
}

func TestInspect(t *testing.T) {
	cli, out := newCLI(t)
	manifest := writeManifest(t)

	cli.SetArgs([]string{"inspect", "--manifest", manifest, "--spec", filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "2024-05-02")
	assert.Contains(t, out.String(), "minimal: rustc")
}

func TestToolchain(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"toolchain", "nightly-2022-11-30-x86_64-unknown-linux-gnu"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "https://static.rust-lang.org/dist/2022-11-30/channel-rust-nightly.toml")
	assert.Contains(t, out.String(), "x86_64-unknown-linux-gnu")
}

func TestFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad toolchain", []string{"toolchain", "unstable"}, domain.ErrChannelParse.Error()},
		{"bad format", []string{"toolchain", "stable", "-o", "xml"}, domain.ErrUnknownFormat.Error()},
		{"bad host", []string{"packages", "--manifest", "x.toml", "--host", "x86_64 linux"}, domain.ErrTargetParse.Error()},
		{"bad log level", []string{"--log-level", "loud", "version"}, domain.ErrUnknownLogLevel.Error()},
		{"missing argument", []string{"toolchain"}, "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newCLI(t)
			cli.SetArgs(tt.args)

			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestVersion(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "rtm version "+build.Version+"\n", out.String())
}

func TestRoot_Help(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "packages")
	assert.Contains(t, out.String(), "downloads")
}

func TestNilComponents(t *testing.T) {
	cli := commands.New(&app.Components{})
	cli.SetOutput(io.Discard)
	cli.SetArgs([]string{"--log-level", "debug", "--no-progress", "version"})

	assert.NoError(t, cli.Execute(context.Background()))
}
