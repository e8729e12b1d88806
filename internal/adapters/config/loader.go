// Package config provides the request file loader for rtm.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the request file at path. A missing file yields an empty request.
func (l *Loader) Load(path string) (domain.Request, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no request file found", "path", path)
			return domain.Request{}, nil
		}
		return domain.Request{}, zerr.Wrap(err, "failed to read request file")
	}

	var file Requestfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Request{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "path", path)
	}

	req, err := l.toRequest(&file)
	if err != nil {
		return domain.Request{}, zerr.With(err, "path", path)
	}
	return req, nil
}

func (l *Loader) toRequest(file *Requestfile) (domain.Request, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		return domain.Request{}, zerr.With(domain.ErrInvalidConfig, "version", file.Version)
	}

	hosts, err := l.parseTriples("hosts", file.Hosts)
	if err != nil {
		return domain.Request{}, err
	}
	targets, err := l.parseTriples("targets", file.Targets)
	if err != nil {
		return domain.Request{}, err
	}

	return domain.Request{
		Toolchain: file.Toolchain,
		Manifest:  file.Manifest,
		Hosts:     hosts,
		Spec: domain.InstallSpec{
			Profile:    file.Profile,
			Components: l.canonicalizeStrings("components", file.Components),
			Targets:    targets,
		},
	}, nil
}

func (l *Loader) parseTriples(field string, strs []string) ([]domain.Triple, error) {
	unique := l.canonicalizeStrings(field, strs)
	if len(unique) == 0 {
		return nil, nil
	}
	res := make([]domain.Triple, len(unique))
	for i, s := range unique {
		t, err := domain.ParseTriple(s)
		if err != nil {
			return nil, zerr.With(err, "field", field)
		}
		res[i] = t
	}
	return res, nil
}

// canonicalizeStrings sorts and deduplicates strs, warning about duplicates.
func (l *Loader) canonicalizeStrings(field string, strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	unique := slices.Compact(sorted)
	if len(unique) != len(strs) {
		l.Logger.Warn("duplicate entries ignored", "field", field)
	}
	return unique
}
