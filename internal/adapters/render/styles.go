package render

import "github.com/charmbracelet/lipgloss"

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	faint   lipgloss.Style
}

// newStyles binds the styles to the color profile of the output being written.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Foreground(colorIris).Bold(true),
		label:   r.NewStyle().Bold(true),
		faint:   r.NewStyle().Foreground(colorSlate),
	}
}
