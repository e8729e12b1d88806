// Package render prints resolution results as text, YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Packages prints the package set of every host.
func (r *Renderer) Packages(w io.Writer, format domain.OutputFormat, sets []domain.HostPackages) error {
	dtos := toHostPackagesDTO(sets)
	return encode(w, format, dtos, func(s styles, b *strings.Builder) {
		for _, set := range dtos {
			b.WriteString(s.heading.Render(set.Host) + "\n")
			for _, pkg := range set.Packages {
				fmt.Fprintf(b, "  %s\n", pkg)
			}
		}
	})
}

// Lockfile prints a download plan.
func (r *Renderer) Lockfile(w io.Writer, format domain.OutputFormat, lock *domain.Lockfile) error {
	dto := toLockfileDTO(lock)
	return encode(w, format, dto, func(s styles, b *strings.Builder) {
		fmt.Fprintf(b, "%s %s (%s)\n", s.label.Render("manifest"), dto.ManifestVersion, dto.Date)
		if dto.Fingerprint != "" {
			fmt.Fprintf(b, "%s %s\n", s.label.Render("fingerprint"), dto.Fingerprint)
		}
		for _, host := range dto.Hosts {
			b.WriteString(s.heading.Render(host.Host) + "\n")
			for _, pkg := range host.Packages {
				fmt.Fprintf(b, "  %s %s %s\n", pkg.Name, s.faint.Render(pkg.Target), pkg.Version)
				for _, artifact := range pkg.Artifacts {
					fmt.Fprintf(b, "    %-3s %s %s\n", artifact.Compression, artifact.URL, s.faint.Render(artifact.Digest))
				}
			}
		}
	})
}

// Manifest prints a summary of a manifest.
func (r *Renderer) Manifest(w io.Writer, format domain.OutputFormat, m *domain.Manifest) error {
	dto := toManifestDTO(m)
	return encode(w, format, dto, func(s styles, b *strings.Builder) {
		fmt.Fprintf(b, "%s %s\n", s.label.Render("manifest-version:"), dto.ManifestVersion)
		fmt.Fprintf(b, "%s %s\n", s.label.Render("date:"), dto.Date)
		fmt.Fprintf(b, "%s %d\n", s.label.Render("packages:"), len(dto.Packages))
		b.WriteString(s.label.Render("hosts:") + "\n")
		for _, host := range dto.Hosts {
			fmt.Fprintf(b, "  %s\n", host)
		}
		b.WriteString(s.label.Render("profiles:") + "\n")
		for _, name := range m.Profiles() {
			fmt.Fprintf(b, "  %s: %s\n", s.heading.Render(name), strings.Join(dto.Profiles[name], ", "))
		}
		if len(dto.Artifacts) > 0 {
			fmt.Fprintf(b, "%s %s\n", s.label.Render("artifacts:"), strings.Join(dto.Artifacts, ", "))
		}
	})
}

// Toolchain prints a parsed toolchain name.
func (r *Renderer) Toolchain(w io.Writer, format domain.OutputFormat, tc domain.Toolchain) error {
	dto := toToolchainDTO(tc)
	return encode(w, format, dto, func(s styles, b *strings.Builder) {
		fmt.Fprintf(b, "%s %s\n", s.label.Render("name:"), dto.Name)
		fmt.Fprintf(b, "%s %s\n", s.label.Render("channel:"), dto.Channel)
		if dto.Date != "" {
			fmt.Fprintf(b, "%s %s\n", s.label.Render("date:"), dto.Date)
		}
		if dto.Host != "" {
			fmt.Fprintf(b, "%s %s\n", s.label.Render("host:"), dto.Host)
		}
		fmt.Fprintf(b, "%s %t\n", s.label.Render("pinned:"), dto.Pinned)
		fmt.Fprintf(b, "%s %s\n", s.label.Render("manifest:"), dto.ManifestURL)
	})
}

func encode(w io.Writer, format domain.OutputFormat, v any, text func(styles, *strings.Builder)) error {
	switch format {
	case domain.FormatText, "":
		var b strings.Builder
		text(newStyles(lipgloss.NewRenderer(w)), &b)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
		return nil
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return nil
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode json")
		}
		return nil
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
}
