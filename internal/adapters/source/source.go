// Package source fetches manifest documents from local files and HTTP servers.
package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a single manifest download.
const DefaultTimeout = 30 * time.Second

var _ ports.ManifestSource = (*Source)(nil)

// Source implements ports.ManifestSource.
// Documents whose name ends in .gz, .xz or .zst are decompressed before being returned.
type Source struct {
	httpClient *http.Client
}

// New creates a Source with a default HTTP client.
func New() *Source {
	return &Source{httpClient: &http.Client{Timeout: DefaultTimeout}}
}

// NewWithClient creates a Source using client for remote documents.
func NewWithClient(client *http.Client) *Source {
	return &Source{httpClient: client}
}

// Fetch returns the decompressed document at location.
func (s *Source) Fetch(ctx context.Context, location string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if domain.IsRemote(location) {
		data, err = s.download(ctx, location)
	} else {
		data, err = readFile(location)
	}
	if err != nil {
		return nil, err
	}

	_, kind, compressed := domain.SplitCompression(domain.DocumentName(location))
	if !compressed {
		return data, nil
	}
	return decompress(kind, data, location)
}

func (s *Source) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(domain.ErrFetchFailed, "status_code", resp.StatusCode), "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", path)
	}
	return data, nil
}

func decompress(kind domain.Compression, data []byte, location string) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)
	switch kind {
	case domain.CompressionGzip:
		var zr *gzip.Reader
		zr, err = gzip.NewReader(bytes.NewReader(data))
		if err == nil {
			defer zr.Close() //nolint:errcheck // Reader holds no resources beyond memory
			r = zr
		}
	case domain.CompressionXz:
		r, err = xz.NewReader(bytes.NewReader(data))
	case domain.CompressionZstd:
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(bytes.NewReader(data))
		if err == nil {
			defer zr.Close()
			r = zr
		}
	}
	if err != nil {
		return nil, decompressError(err, kind, location)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, decompressError(err, kind, location)
	}
	return out, nil
}

func decompressError(err error, kind domain.Compression, location string) error {
	wrapped := zerr.Wrap(err, domain.ErrDecompressFailed.Error())
	return zerr.With(zerr.With(wrapped, "compression", kind.String()), "location", location)
}
