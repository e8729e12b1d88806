package domain

import "go.trai.ch/zerr"

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// FormatText is human-readable text.
	FormatText OutputFormat = "text"
	// FormatYAML is YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON is indented JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", zerr.With(ErrUnknownFormat, "format", s)
	}
}
