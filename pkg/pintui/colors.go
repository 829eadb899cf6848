package pintui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
// The same tokens are dumped by `pintui tokens`.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "4" // Blue
	ColorAccent  lipgloss.Color = "6" // Cyan, spinners and sections
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// styles holds every style a Printer renders with. They are bound to the
// printer's renderer so color detection follows the output writer.
type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	accent  lipgloss.Style
	faint   lipgloss.Style
	bold    lipgloss.Style
	section lipgloss.Style
	step    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		info:    r.NewStyle().Foreground(ColorInfo),
		success: r.NewStyle().Foreground(ColorSuccess),
		warn:    r.NewStyle().Foreground(ColorWarning),
		err:     r.NewStyle().Foreground(ColorError),
		accent:  r.NewStyle().Foreground(ColorAccent),
		faint:   r.NewStyle().Faint(true),
		bold:    r.NewStyle().Bold(true),
		section: r.NewStyle().Foreground(ColorAccent).Bold(true),
		step:    r.NewStyle().Foreground(ColorInfo).Bold(true),
	}
}

// Style returns a foreground style for color bound to the printer's renderer.
func (p *Printer) Style(color lipgloss.Color) lipgloss.Style {
	return p.renderer().NewStyle().Foreground(color)
}
