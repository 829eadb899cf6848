package pintui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatItem is one segment of a StatLine. Label is used as given.
type StatItem struct {
	Count int
	Label string
	Color lipgloss.Color
}

// Stat prints "  N label" in color, choosing the singular form for one.
func (p *Printer) Stat(count int, singular, plural string, color lipgloss.Color) {
	p.write("  " + p.Style(color).Render(Pluralize(count, singular, plural)) + "\n")
}

// StatLine prints colored "N label" segments joined by ", ".
// Nothing is printed for an empty list.
//
//	p.StatLine(
//		pintui.StatItem{Count: 5, Label: "passed", Color: pintui.ColorSuccess},
//		pintui.StatItem{Count: 2, Label: "failed", Color: pintui.ColorError},
//	)
func (p *Printer) StatLine(items ...StatItem) {
	if len(items) == 0 {
		return
	}
	segments := make([]string, len(items))
	for i, it := range items {
		segments[i] = p.Style(it.Color).Render(fmt.Sprintf("%d %s", it.Count, it.Label))
	}
	p.write("  " + strings.Join(segments, ", ") + "\n")
}

// Stat prints a count on the default printer.
func Stat(count int, singular, plural string, color lipgloss.Color) {
	Default().Stat(count, singular, plural, color)
}

// StatLine prints a summary line on the default printer.
func StatLine(items ...StatItem) { Default().StatLine(items...) }
