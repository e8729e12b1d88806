// Package app implements the application layer for rtm.
package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/engine/planner"
	"go.trai.ch/zerr"
)

// DefaultCacheTTL is how long a cached manifest of a moving channel is served before refetching.
const DefaultCacheTTL = time.Hour

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.ManifestSource
	decoder      ports.DocumentDecoder
	cache        ports.ManifestCache
	hasher       ports.Hasher
	planner      *planner.Planner
	renderer     ports.Renderer
	telemetry    ports.Telemetry
	logger       ports.Logger

	now      func() time.Time
	cacheTTL time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.ManifestSource,
	decoder ports.DocumentDecoder,
	cache ports.ManifestCache,
	hasher ports.Hasher,
	plan *planner.Planner,
	renderer ports.Renderer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		decoder:      decoder,
		cache:        cache,
		hasher:       hasher,
		planner:      plan,
		renderer:     renderer,
		telemetry:    telemetry,
		logger:       log,
		now:          time.Now,
		cacheTTL:     DefaultCacheTTL,
	}
}

// WithClock replaces the clock used for cache freshness.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithCacheTTL sets how long cached manifests of moving channels stay fresh.
func (a *App) WithCacheTTL(ttl time.Duration) *App {
	a.cacheTTL = ttl
	return a
}

// Options configures a single command.
type Options struct {
	// SpecFile is the request file merged under Request. Empty means domain.RequestFileName.
	SpecFile string
	// Request holds command-line overrides.
	Request domain.Request
	Format  domain.OutputFormat
	// Refresh bypasses the manifest cache.
	Refresh bool
}

// Packages resolves the request and prints the package set of every host.
func (a *App) Packages(ctx context.Context, w io.Writer, opts Options) error {
	plan, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	sets, err := a.planner.Packages(ctx, plan.manifest, plan.hosts, plan.request.Spec)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve packages")
	}
	return a.renderer.Packages(w, opts.Format, sets)
}

// Downloads resolves the request and prints the lockfile of every host.
func (a *App) Downloads(ctx context.Context, w io.Writer, opts Options) error {
	lock, err := a.Lockfile(ctx, opts)
	if err != nil {
		return err
	}
	return a.renderer.Lockfile(w, opts.Format, lock)
}

// Lockfile resolves the request into a fingerprinted lockfile.
func (a *App) Lockfile(ctx context.Context, opts Options) (*domain.Lockfile, error) {
	plan, err := a.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	plans, err := a.planner.Downloads(ctx, plan.manifest, plan.hosts, plan.request.Spec)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve downloads")
	}

	lock := domain.NewLockfile(plan.manifest, plans)
	lock.Fingerprint = a.fingerprint(lock)
	return lock, nil
}

// Inspect loads the requested manifest and prints a summary of it.
func (a *App) Inspect(ctx context.Context, w io.Writer, opts Options) error {
	req, err := a.request(opts)
	if err != nil {
		return err
	}

	location, pinned, _, err := manifestLocation(req)
	if err != nil {
		return err
	}

	m, err := a.LoadManifest(ctx, location, pinned, opts.Refresh)
	if err != nil {
		return err
	}
	return a.renderer.Manifest(w, opts.Format, m)
}

// Toolchain parses a toolchain name and prints its parts and manifest location.
func (a *App) Toolchain(w io.Writer, name string, format domain.OutputFormat) error {
	tc, err := domain.ParseToolchain(name)
	if err != nil {
		return err
	}
	return a.renderer.Toolchain(w, format, tc)
}

// LoadManifest fetches, decodes and builds the manifest at location, going through the
// cache for remote documents.
func (a *App) LoadManifest(ctx context.Context, location string, pinned, refresh bool) (*domain.Manifest, error) {
	ctx, vertex := a.telemetry.Record(ctx, "load "+location)

	m, err := a.loadManifest(ctx, vertex, location, pinned, refresh)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.With(err, "manifest", location)
	}

	a.logger.Debug("manifest loaded",
		"manifest", location, "date", m.Date().Format(domain.DateLayout), "hosts", len(m.Hosts()))
	return m, nil
}

func (a *App) loadManifest(
	ctx context.Context,
	vertex ports.Vertex,
	location string,
	pinned, refresh bool,
) (*domain.Manifest, error) {
	data, err := a.fetch(ctx, vertex, location, pinned, refresh)
	if err != nil {
		return nil, err
	}

	tree, err := a.decoder.Decode(location, data)
	if err != nil {
		return nil, err
	}

	raw, err := domain.DecodeRawManifest(tree)
	if err != nil {
		return nil, err
	}

	return domain.NewManifest(raw)
}

func (a *App) fetch(ctx context.Context, vertex ports.Vertex, location string, pinned, refresh bool) ([]byte, error) {
	if !domain.IsRemote(location) {
		return a.source.Fetch(ctx, location)
	}

	if !refresh {
		entry, data, err := a.cache.Get(location)
		switch {
		case err != nil:
			a.logger.Warn("ignoring manifest cache entry", "manifest", location, "error", err.Error())
		case entry != nil && entry.Fresh(a.now(), a.cacheTTL):
			a.logger.Debug("manifest cache hit", "manifest", location, "cached_at", entry.Timestamp)
			vertex.Cached()
			return data, nil
		case entry != nil:
			a.logger.Debug("manifest cache entry expired", "manifest", location, "cached_at", entry.Timestamp)
		}
	}

	data, err := a.source.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	if _, err := a.cache.Put(location, pinned, data); err != nil {
		a.logger.Warn("failed to cache manifest", "manifest", location, "error", err.Error())
	}
	return data, nil
}

type preparedRequest struct {
	request  domain.Request
	manifest *domain.Manifest
	hosts    []domain.Triple
}

func (a *App) prepare(ctx context.Context, opts Options) (preparedRequest, error) {
	req, err := a.request(opts)
	if err != nil {
		return preparedRequest{}, err
	}

	location, pinned, tc, err := manifestLocation(req)
	if err != nil {
		return preparedRequest{}, err
	}

	hosts, err := a.hosts(req, tc)
	if err != nil {
		return preparedRequest{}, err
	}

	m, err := a.LoadManifest(ctx, location, pinned, opts.Refresh)
	if err != nil {
		return preparedRequest{}, err
	}

	return preparedRequest{request: req, manifest: m, hosts: hosts}, nil
}

// request merges command-line overrides over the request file.
func (a *App) request(opts Options) (domain.Request, error) {
	path := opts.SpecFile
	if path == "" {
		path = domain.RequestFileName
	}

	file, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Request{}, zerr.Wrap(err, "failed to load request file")
	}
	return file.Merge(opts.Request).WithDefaults(), nil
}

// manifestLocation returns where the manifest of req lives and whether it is immutable.
// tc is nil when req names a manifest directly.
func manifestLocation(req domain.Request) (location string, pinned bool, tc *domain.Toolchain, err error) {
	if req.Manifest != "" {
		return req.Manifest, false, nil, nil
	}
	if req.Toolchain == "" {
		return "", false, nil, domain.ErrNoManifestSource
	}

	parsed, err := domain.ParseToolchain(req.Toolchain)
	if err != nil {
		return "", false, nil, err
	}
	return parsed.ManifestURL(), parsed.IsPinned(), &parsed, nil
}

// hosts picks the explicit hosts, then the host of the toolchain name, then the running platform.
func (a *App) hosts(req domain.Request, tc *domain.Toolchain) ([]domain.Triple, error) {
	if len(req.Hosts) > 0 {
		return req.Hosts, nil
	}
	if tc != nil && tc.Host != nil {
		return []domain.Triple{*tc.Host}, nil
	}
	if host, ok := domain.CurrentHost(); ok {
		a.logger.Debug("defaulting to current host", "host", host.String())
		return []domain.Triple{host}, nil
	}
	return nil, domain.ErrNoHosts
}

func (a *App) fingerprint(lock *domain.Lockfile) string {
	ids := lock.ArtifactIdentifiers()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return a.hasher.Sum([]byte(strings.Join(parts, "\n")))
}
