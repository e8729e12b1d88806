package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DateLayout is the layout of manifest release dates and toolchain dates.
const DateLayout = "2006-01-02"

// DistServer is the root of the official distribution server.
const DistServer = "https://static.rust-lang.org/dist"

// ChannelKind names a release track.
type ChannelKind int

const (
	// ChannelStable is the stable release track.
	ChannelStable ChannelKind = iota
	// ChannelBeta is the beta release track.
	ChannelBeta
	// ChannelNightly is the nightly release track.
	ChannelNightly
	// ChannelVersion is a fixed release such as 1.65 or 1.65.0.
	ChannelVersion
)

// Channel is a release track or a fixed version.
type Channel struct {
	Kind     ChannelKind
	Major    uint16
	Minor    uint16
	Patch    uint16
	HasPatch bool
}

// ParseChannel parses "stable", "beta", "nightly", "MAJOR.MINOR" or "MAJOR.MINOR.PATCH".
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "stable":
		return Channel{Kind: ChannelStable}, nil
	case "beta":
		return Channel{Kind: ChannelBeta}, nil
	case "nightly":
		return Channel{Kind: ChannelNightly}, nil
	}

	parts := strings.Split(s, ".")
	numbers := make([]uint16, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return Channel{}, zerr.With(
				zerr.With(ErrChannelParse, "channel", s),
				"reason", "could not parse version number component as integer",
			)
		}
		numbers = append(numbers, uint16(n))
	}
	if len(numbers) < 2 || len(numbers) > 3 {
		return Channel{}, zerr.With(
			zerr.With(ErrChannelParse, "channel", s),
			"reason", fmt.Sprintf("incorrect number of components in version: %d", len(numbers)),
		)
	}

	ch := Channel{Kind: ChannelVersion, Major: numbers[0], Minor: numbers[1]}
	if len(numbers) == 3 {
		ch.Patch = numbers[2]
		ch.HasPatch = true
	}
	return ch, nil
}

func (c Channel) String() string {
	switch c.Kind {
	case ChannelStable:
		return "stable"
	case ChannelBeta:
		return "beta"
	case ChannelNightly:
		return "nightly"
	default:
		if c.HasPatch {
			return fmt.Sprintf("%d.%d.%d", c.Major, c.Minor, c.Patch)
		}
		return fmt.Sprintf("%d.%d", c.Major, c.Minor)
	}
}

// Toolchain identifies a toolchain as channel[-date][-host],
// e.g. "nightly-2022-11-30-x86_64-pc-windows-msvc".
type Toolchain struct {
	Channel Channel
	Date    *time.Time
	Host    *Triple
}

// ParseToolchain parses a toolchain name. The date is optional and is only recognised when the
// three components after the channel form a valid date; anything left over is the host triple.
func ParseToolchain(s string) (Toolchain, error) {
	split := strings.Split(s, "-")
	ch, err := ParseChannel(split[0])
	if err != nil {
		return Toolchain{}, err
	}
	rest := split[1:]

	tc := Toolchain{Channel: ch}
	if len(rest) >= 3 {
		if date, err := time.Parse(DateLayout, strings.Join(rest[:3], "-")); err == nil {
			tc.Date = &date
			rest = rest[3:]
		}
	}
	if len(rest) > 0 {
		host, err := ParseTriple(strings.Join(rest, "-"))
		if err != nil {
			return Toolchain{}, err
		}
		tc.Host = &host
	}
	return tc, nil
}

// ManifestURL returns the location of the channel manifest on the distribution server.
func (t Toolchain) ManifestURL() string {
	if t.Date != nil {
		return fmt.Sprintf("%s/%s/channel-rust-%s.toml", DistServer, t.Date.Format(DateLayout), t.Channel)
	}
	return fmt.Sprintf("%s/channel-rust-%s.toml", DistServer, t.Channel)
}

// IsPinned reports whether the toolchain names an immutable release: a dated channel or a
// fixed version.
func (t Toolchain) IsPinned() bool {
	return t.Date != nil || t.Channel.Kind == ChannelVersion
}

func (t Toolchain) String() string {
	var b strings.Builder
	b.WriteString(t.Channel.String())
	if t.Date != nil {
		b.WriteString("-")
		b.WriteString(t.Date.Format(DateLayout))
	}
	if t.Host != nil {
		b.WriteString("-")
		b.WriteString(t.Host.String())
	}
	return b.String()
}
