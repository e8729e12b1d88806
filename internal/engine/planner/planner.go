// Package planner resolves one install request for several hosts concurrently.
package planner

import (
	"context"
	"runtime"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Planner resolves install specs per host against a shared Manifest.
type Planner struct {
	telemetry   ports.Telemetry
	logger      ports.Logger
	parallelism int
}

// New creates a Planner that resolves up to runtime.NumCPU() hosts at once.
func New(telemetry ports.Telemetry, logger ports.Logger) *Planner {
	return &Planner{
		telemetry:   telemetry,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// WithParallelism sets the maximum number of hosts resolved at once.
func (p *Planner) WithParallelism(n int) *Planner {
	if n > 0 {
		p.parallelism = n
	}
	return p
}

// Packages returns the package set of every host, in the order the hosts were given.
func (p *Planner) Packages(
	ctx context.Context,
	m *domain.Manifest,
	hosts []domain.Triple,
	spec domain.InstallSpec,
) ([]domain.HostPackages, error) {
	return forEachHost(ctx, p, m, hosts, spec, func(host domain.Triple) (domain.HostPackages, error) {
		set, err := m.FindPackagesForInstall(host, spec)
		if err != nil {
			return domain.HostPackages{}, err
		}
		return domain.HostPackages{Host: host, Packages: set.Sorted()}, nil
	})
}

// Downloads returns the download plan of every host, in the order the hosts were given.
func (p *Planner) Downloads(
	ctx context.Context,
	m *domain.Manifest,
	hosts []domain.Triple,
	spec domain.InstallSpec,
) ([]domain.HostPlan, error) {
	return forEachHost(ctx, p, m, hosts, spec, func(host domain.Triple) (domain.HostPlan, error) {
		downloads, err := m.FindDownloadsForInstall(host, spec)
		if err != nil {
			return domain.HostPlan{}, err
		}
		return domain.HostPlan{Host: host, Packages: downloads}, nil
	})
}

func forEachHost[T any](
	ctx context.Context,
	p *Planner,
	m *domain.Manifest,
	hosts []domain.Triple,
	spec domain.InstallSpec,
	resolve func(domain.Triple) (T, error),
) ([]T, error) {
	hosts = uniqueHosts(hosts)
	if len(hosts) == 0 {
		return nil, domain.ErrNoHosts
	}

	results := make([]T, len(hosts))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)

	for i, host := range hosts {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			_, vertex := p.telemetry.Record(groupCtx, "resolve "+host.String())
			p.reportSkipped(vertex, m, host, spec)

			result, err := resolve(host)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(err, "host", host.String())
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// reportSkipped logs the profile components that are silently left out on host.
func (p *Planner) reportSkipped(vertex ports.Vertex, m *domain.Manifest, host domain.Triple, spec domain.InstallSpec) {
	profile, err := m.Profile(spec.Profile)
	if err != nil {
		return
	}
	for _, component := range profile {
		if _, err := m.Resolve(host, component); domain.IsPackageUnknown(err) {
			p.logger.Debug("profile component not available on host",
				"component", component, "host", host.String(), "profile", spec.Profile)
			vertex.Log(domain.LogLevelDebug, "skipped "+component)
		}
	}
}

func uniqueHosts(hosts []domain.Triple) []domain.Triple {
	seen := make(map[domain.Triple]struct{}, len(hosts))
	unique := make([]domain.Triple, 0, len(hosts))
	for _, host := range hosts {
		if _, ok := seen[host]; ok {
			continue
		}
		seen[host] = struct{}{}
		unique = append(unique, host)
	}
	return unique
}
