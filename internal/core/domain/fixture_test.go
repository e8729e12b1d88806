package domain_test

import (
	"strings"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/stretchr/testify/require"
)

const (
	linux   = "x86_64-unknown-linux-gnu"
	arm     = "aarch64-unknown-linux-gnu"
	windows = "x86_64-pc-windows-gnu"
	wasm    = "wasm32-unknown-unknown"
)

func hash(c string) string {
	return strings.Repeat(c, 64)
}

func build(name, target, gzHash string) map[string]any {
	return map[string]any{
		"available": true,
		"url":       "https://static.rust-lang.org/dist/" + name + "-" + target + ".tar.gz",
		"hash":      gzHash,
	}
}

func unavailable() map[string]any {
	return map[string]any{"available": false}
}

func component(pkg, target string) map[string]any {
	return map[string]any{"pkg": pkg, "target": target}
}

func pkg(targets map[string]any) map[string]any {
	return map[string]any{
		"version":         "1.66.0-nightly (e0098a5cc 2022-11-29)",
		"git_commit_hash": hash("e"),
		"target":          targets,
	}
}

// sampleTree returns a small nightly manifest with two hosts, a rename and packages of every shape.
func sampleTree() map[string]any {
	linuxRust := build("rust", linux, hash("1"))
	linuxRust["components"] = []any{
		component("rustc", linux),
		component("cargo", linux),
		component("rust-std", linux),
		component("rustfmt-preview", linux),
	}
	linuxRust["extensions"] = []any{
		component("rust-std", arm),
		component("rust-std", wasm),
		component("rust-src", "*"),
		component("rust-docs-json", "*"),
		component("rust-analysis", linux),
	}

	armRust := unavailable()
	armRust["components"] = []any{
		component("cargo", arm),
		component("rust-std", arm),
	}
	armRust["extensions"] = []any{
		component("rust-std", linux),
	}

	return map[string]any{
		"manifest-version": "2",
		"date":             "2022-11-30",
		"profiles": map[string]any{
			"minimal": []any{"rustc", "cargo", "rust-std"},
			"default": []any{"rustc", "cargo", "rust-std", "rustfmt", "rust-mingw"},
		},
		"renames": map[string]any{
			"rustfmt": map[string]any{"to": "rustfmt-preview"},
		},
		"artifacts": map[string]any{
			"source-code": map[string]any{
				"target": map[string]any{
					"*": []any{
						map[string]any{
							"hash-sha256": hash("5"),
							"url":         "https://static.rust-lang.org/dist/rustc-nightly-src.tar.xz",
						},
					},
				},
			},
		},
		"pkg": map[string]any{
			"rust": pkg(map[string]any{
				linux: linuxRust,
				arm:   armRust,
			}),
			"rustc": pkg(map[string]any{
				linux: build("rustc", linux, hash("2")),
			}),
			"cargo": pkg(map[string]any{
				linux: build("cargo", linux, hash("3")),
				arm:   build("cargo", arm, hash("4")),
			}),
			"rust-std": pkg(map[string]any{
				linux: build("rust-std", linux, hash("6")),
				arm:   build("rust-std", arm, hash("7")),
				wasm:  unavailable(),
			}),
			"rustfmt-preview": pkg(map[string]any{
				linux: build("rustfmt", linux, hash("8")),
			}),
			"rust-mingw": pkg(map[string]any{
				windows: build("rust-mingw", windows, hash("9")),
			}),
			"rust-src": pkg(map[string]any{
				"*": build("rust-src", "*", hash("a")),
			}),
			"rust-docs-json": pkg(map[string]any{
				"*": unavailable(),
			}),
			"rust-analysis": map[string]any{
				"target": map[string]any{
					linux: build("rust-analysis", linux, hash("b")),
				},
			},
		},
	}
}

func newManifest(t *testing.T, tree map[string]any) *domain.Manifest {
	t.Helper()
	raw, err := domain.DecodeRawManifest(tree)
	require.NoError(t, err)
	m, err := domain.NewManifest(raw)
	require.NoError(t, err)
	return m
}

func triple(t *testing.T, s string) domain.Triple {
	t.Helper()
	tr, err := domain.ParseTriple(s)
	require.NoError(t, err)
	return tr
}

func specific(t *testing.T, s string) domain.SupportedTarget {
	t.Helper()
	return domain.Specific(triple(t, s))
}
