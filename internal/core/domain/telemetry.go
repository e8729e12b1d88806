package domain

import "strings"

// VertexStatus is the lifecycle state of a unit of work shown in progress output.
type VertexStatus string

const (
	// VertexStatusPending indicates the vertex has not started.
	VertexStatusPending VertexStatus = "pending"
	// VertexStatusRunning indicates the vertex is in progress.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the vertex finished successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the vertex finished with an error.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the vertex was served from the cache.
	VertexStatusCached VertexStatus = "cached"
)

// IsTerminal reports whether the status is final.
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed, VertexStatusCached:
		return true
	default:
		return false
	}
}

// LogLevel is the severity of a log message, mirroring the slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name such as "debug" or "WARN" to a LogLevel.
// Unknown names yield LogLevelInfo and false.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug, true
	case "info", "":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	default:
		return LogLevelInfo, false
	}
}
