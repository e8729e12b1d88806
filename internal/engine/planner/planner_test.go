package planner_test

import (
	"context"
	"strings"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports/mocks"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/engine/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	linux  = domain.MustParseTriple("x86_64-unknown-linux-gnu")
	darwin = domain.MustParseTriple("aarch64-apple-darwin")
	mingw  = domain.MustParseTriple("x86_64-pc-windows-gnu")
)

func available(name string, host domain.Triple) map[string]any {
	return map[string]any{
		"available": true,
		"url":       "https://static.rust-lang.org/dist/" + name + "-" + host.String() + ".tar.gz",
		"hash":      strings.Repeat("c", 64),
	}
}

func hostBuild(host domain.Triple, components ...string) map[string]any {
	b := available("rust", host)
	list := make([]any, 0, len(components))
	for _, c := range components {
		list = append(list, map[string]any{"pkg": c, "target": host.String()})
	}
	b["components"] = list
	return b
}

func versioned(targets map[string]any) map[string]any {
	return map[string]any{
		"version":         "1.78.0",
		"git_commit_hash": strings.Repeat("9", 40),
		"target":          targets,
	}
}

func sampleManifest(t *testing.T) *domain.Manifest {
	t.Helper()
	tree := map[string]any{
		"manifest-version": "2",
		"date":             "2024-05-02",
		"profiles": map[string]any{
			"default": []any{"rustc", "rust-mingw"},
		},
		"pkg": map[string]any{
			"rust": versioned(map[string]any{
				linux.String():  hostBuild(linux, "rustc"),
				darwin.String(): hostBuild(darwin, "rustc"),
				mingw.String():  hostBuild(mingw, "rustc", "rust-mingw"),
			}),
			"rustc": versioned(map[string]any{
				linux.String():  available("rustc", linux),
				darwin.String(): available("rustc", darwin),
				mingw.String():  available("rustc", mingw),
			}),
			"rust-mingw": versioned(map[string]any{
				mingw.String(): available("rust-mingw", mingw),
			}),
		},
	}
	raw, err := domain.DecodeRawManifest(tree)
	require.NoError(t, err)
	m, err := domain.NewManifest(raw)
	require.NoError(t, err)
	return m
}

func newPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return planner.New(telemetry.NewNoOp(), mockLogger)
}

func TestPlanner_PackagesKeepsHostOrder(t *testing.T) {
	m := sampleManifest(t)
	spec := domain.InstallSpec{Profile: "default"}
	hosts := []domain.Triple{mingw, linux, darwin}

	for _, parallelism := range []int{1, 8} {
		sets, err := newPlanner(t).WithParallelism(parallelism).Packages(context.Background(), m, hosts, spec)
		require.NoError(t, err)
		require.Len(t, sets, 3)

		assert.Equal(t, mingw, sets[0].Host)
		assert.Equal(t, linux, sets[1].Host)
		assert.Equal(t, darwin, sets[2].Host)

		assert.Len(t, sets[0].Packages, 2, "rust-mingw is available on the mingw host")
		assert.Len(t, sets[1].Packages, 1, "rust-mingw is skipped on linux")
		assert.Equal(t, "rustc", sets[1].Packages[0].Name)
	}
}

func TestPlanner_Downloads(t *testing.T) {
	m := sampleManifest(t)

	plans, err := newPlanner(t).Downloads(context.Background(), m, []domain.Triple{linux, mingw}, domain.InstallSpec{Profile: "default"})
	require.NoError(t, err)
	require.Len(t, plans, 2)

	require.Len(t, plans[0].Packages, 1)
	assert.Equal(t, "rustc", plans[0].Packages[0].Name)
	assert.Equal(t, "1.78.0", plans[0].Packages[0].Version)

	require.Len(t, plans[1].Packages, 2)
	assert.Equal(t, "rust-mingw", plans[1].Packages[0].Name)
	assert.Equal(t, "rustc", plans[1].Packages[1].Name)
}

func TestPlanner_DuplicateHosts(t *testing.T) {
	m := sampleManifest(t)

	sets, err := newPlanner(t).Packages(context.Background(), m, []domain.Triple{linux, linux}, domain.InstallSpec{Profile: "default"})
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestPlanner_LogsSkippedProfileComponents(t *testing.T) {
	m := sampleManifest(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("profile component not available on host",
		"component", "rust-mingw", "host", linux.String(), "profile", "default").Times(1)

	_, err := planner.New(telemetry.NewNoOp(), mockLogger).
		Packages(context.Background(), m, []domain.Triple{linux}, domain.InstallSpec{Profile: "default"})
	require.NoError(t, err)
}

func TestPlanner_Errors(t *testing.T) {
	m := sampleManifest(t)
	wasm := domain.MustParseTriple("wasm32-unknown-unknown")

	tests := []struct {
		name        string
		hosts       []domain.Triple
		spec        domain.InstallSpec
		errContains string
	}{
		{
			name:        "no hosts",
			spec:        domain.InstallSpec{Profile: "default"},
			errContains: domain.ErrNoHosts.Error(),
		},
		{
			name:        "unknown host",
			hosts:       []domain.Triple{linux, wasm},
			spec:        domain.InstallSpec{Profile: "default"},
			errContains: domain.ErrUnknownTarget.Error(),
		},
		{
			name:        "explicit component missing",
			hosts:       []domain.Triple{linux},
			spec:        domain.InstallSpec{Profile: "default", Components: []string{"rust-mingw"}},
			errContains: domain.ErrPackageUnknown.Error(),
		},
		{
			name:        "unknown profile",
			hosts:       []domain.Triple{linux},
			spec:        domain.InstallSpec{Profile: "complete"},
			errContains: domain.ErrUnknownProfile.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := newPlanner(t).Packages(context.Background(), m, tt.hosts, tt.spec)
			require.Error(t, err)
			assert.Nil(t, sets)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestPlanner_Canceled(t *testing.T) {
	m := sampleManifest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPlanner(t).Downloads(ctx, m, []domain.Triple{linux, darwin}, domain.InstallSpec{Profile: "default"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlanner_RecordsVertexPerHost(t *testing.T) {
	m := sampleManifest(t)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockVertex := mocks.NewMockVertex(ctrl)

	mockTelemetry.EXPECT().Record(gomock.Any(), "resolve "+linux.String()).
		Return(context.Background(), mockVertex)
	mockVertex.EXPECT().Log(domain.LogLevelDebug, "skipped rust-mingw")
	mockVertex.EXPECT().Complete(nil)

	_, err := planner.New(mockTelemetry, mockLogger).
		Packages(context.Background(), m, []domain.Triple{linux}, domain.InstallSpec{Profile: "default"})
	require.NoError(t, err)
}
