package source_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/source"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const document = "manifest-version = \"2\"\ndate = \"2024-05-02\"\n"

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func xzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestFetch_LocalFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{"channel-rust-stable.toml", []byte(document)},
		{"channel-rust-stable.toml.gz", gzipped(t, document)},
		{"channel-rust-stable.toml.xz", xzipped(t, document)},
		{"channel-rust-stable.toml.zst", zstded(t, document)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, tt.data, 0o600))

			got, err := source.New().Fetch(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, document, string(got))
		})
	}
}

func TestFetch_MissingFile(t *testing.T) {
	_, err := source.New().Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}

func TestFetch_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bad.toml.gz", "bad.toml.xz", "bad.toml.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte("not compressed at all"), 0o600))

			_, err := source.New().Fetch(context.Background(), path)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrDecompressFailed.Error())
		})
	}
}

func TestFetch_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dist/channel-rust-stable.toml":
			_, _ = w.Write([]byte(document))
		case "/dist/channel-rust-stable.toml.xz":
			_, _ = w.Write(xzipped(t, document))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := source.NewWithClient(server.Client())

	got, err := s.Fetch(context.Background(), server.URL+"/dist/channel-rust-stable.toml")
	require.NoError(t, err)
	assert.Equal(t, document, string(got))

	got, err = s.Fetch(context.Background(), server.URL+"/dist/channel-rust-stable.toml.xz?cache=no")
	require.NoError(t, err)
	assert.Equal(t, document, string(got))
}

func TestFetch_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := source.NewWithClient(server.Client()).Fetch(context.Background(), server.URL+"/dist/channel-rust-1.0.toml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}

func TestFetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(document))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewWithClient(server.Client()).Fetch(ctx, server.URL+"/channel.toml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}
