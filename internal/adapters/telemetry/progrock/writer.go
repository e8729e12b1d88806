package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*LineWriter)(nil)

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
)

// LineWriter is a progrock.Writer that prints a line whenever a vertex reaches a terminal
// status. Vertex output is printed only in verbose mode.
type LineWriter struct {
	mu       sync.Mutex
	out      io.Writer
	verbose  bool
	names    map[string]string
	statuses map[string]domain.VertexStatus
}

// NewLineWriter creates a LineWriter printing to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		out:      w,
		names:    make(map[string]string),
		statuses: make(map[string]domain.VertexStatus),
	}
}

// SetOutput changes the destination of progress lines.
func (w *LineWriter) SetOutput(out io.Writer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.out = out
}

// SetVerbose toggles printing of vertex output.
func (w *LineWriter) SetVerbose(verbose bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.verbose = verbose
}

// Status returns the last known status of the vertex with the given name.
func (w *LineWriter) Status(name string) domain.VertexStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, n := range w.names {
		if n == name {
			return w.statuses[id]
		}
	}
	return domain.VertexStatusPending
}

// WriteStatus implements progrock.Writer.
func (w *LineWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var b strings.Builder
	r := lipgloss.NewRenderer(w.out)

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
		previous := w.statuses[v.Id]
		status := statusOf(v)
		w.statuses[v.Id] = status
		if status.IsTerminal() && !previous.IsTerminal() {
			b.WriteString(formatLine(r, v, status))
		}
	}

	if w.verbose {
		for _, l := range update.Logs {
			name := w.names[l.Vertex]
			for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
				fmt.Fprintf(&b, "%s %s\n", r.NewStyle().Foreground(colorSlate).Render(name+":"), line)
			}
		}
	}

	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

// Close implements progrock.Writer.
func (w *LineWriter) Close() error {
	return nil
}

func statusOf(v *progrock.Vertex) domain.VertexStatus {
	switch {
	case v.Completed == nil && v.Started == nil:
		return domain.VertexStatusPending
	case v.Completed == nil:
		return domain.VertexStatusRunning
	case v.Error != nil:
		return domain.VertexStatusFailed
	case v.Cached:
		return domain.VertexStatusCached
	default:
		return domain.VertexStatusCompleted
	}
}

func formatLine(r *lipgloss.Renderer, v *progrock.Vertex, status domain.VertexStatus) string {
	switch status {
	case domain.VertexStatusFailed:
		style := r.NewStyle().Foreground(lipgloss.Color("196"))
		return style.Render("✗ "+v.Name) + ": " + v.GetError() + "\n"
	case domain.VertexStatusCached:
		style := r.NewStyle().Foreground(colorSlate).Faint(true)
		return style.Render("⚡ "+v.Name+" (cached)") + "\n"
	default:
		style := r.NewStyle().Foreground(colorIris)
		return style.Render("✓ "+v.Name) + "\n"
	}
}
