package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/config"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeRequest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.RequestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeRequest(t, `
version: "1"
toolchain: nightly-2022-11-30
hosts: [x86_64-unknown-linux-gnu, aarch64-apple-darwin]
profile: minimal
components: [rustfmt, clippy]
targets: [wasm32-unknown-unknown]
`)

	req, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nightly-2022-11-30", req.Toolchain)
	assert.Empty(t, req.Manifest)
	require.Len(t, req.Hosts, 2)
	assert.Equal(t, "aarch64-apple-darwin", req.Hosts[0].String())
	assert.Equal(t, "x86_64-unknown-linux-gnu", req.Hosts[1].String())
	assert.Equal(t, "minimal", req.Spec.Profile)
	assert.Equal(t, []string{"clippy", "rustfmt"}, req.Spec.Components)
	require.Len(t, req.Spec.Targets, 1)
	assert.Equal(t, "wasm32-unknown-unknown", req.Spec.Targets[0].String())
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("no request file found", "path", gomock.Any())

	req, err := config.NewLoader(mockLogger).Load(filepath.Join(t.TempDir(), domain.RequestFileName))
	require.NoError(t, err)
	assert.Equal(t, domain.Request{}, req)
}

func TestLoad_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	req, err := config.NewLoader(mockLogger).Load(writeRequest(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.Request{}, req)
}

func TestLoad_Duplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("duplicate entries ignored", "field", "components")

	req, err := config.NewLoader(mockLogger).Load(writeRequest(t, "components: [rust-src, rust-src]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"rust-src"}, req.Spec.Components)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "unknown field",
			content:     "toolchains: stable\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "malformed yaml",
			content:     "hosts: [x86_64\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "unsupported version",
			content:     "version: \"2\"\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "bad host triple",
			content:     "hosts: [linux]\n",
			errContains: domain.ErrTargetParse.Error(),
		},
		{
			name:        "bad target triple",
			content:     "targets: [\"wasm32--unknown\"]\n",
			errContains: domain.ErrTargetParse.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

			_, err := config.NewLoader(mockLogger).Load(writeRequest(t, tt.content))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}
