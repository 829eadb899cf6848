package pintui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Table prints rows in aligned columns with a two-space indent and a
// two-space gap. Widths are measured in display cells, so wide runes and
// styled cells line up.
type Table struct {
	p     *Printer
	fixed []int
	rows  [][]string
}

// NewTable creates a table whose column widths fit the widest cell.
func (p *Printer) NewTable() *Table {
	return &Table{p: p}
}

// NewAlignedTable creates a table with fixed column widths. A width of 0
// sizes that column automatically. Longer cells are not truncated.
func (p *Printer) NewAlignedTable(widths ...int) *Table {
	return &Table{p: p, fixed: widths}
}

// Row appends a row. Rows may have different lengths.
func (t *Table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render returns the table as text, one line per row. The last column is
// not padded and trailing spaces are trimmed.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := t.widths()
	var b strings.Builder
	for _, row := range t.rows {
		var line strings.Builder
		line.WriteString("  ")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line.WriteString(cell)
			if i < len(widths)-1 {
				if pad := w - lipgloss.Width(cell); pad > 0 {
					line.WriteString(strings.Repeat(" ", pad))
				}
				line.WriteString("  ")
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Print writes the table to the printer.
func (t *Table) Print() {
	if out := t.Render(); out != "" {
		t.p.write(out)
	}
}

// Model converts the table into a Bubble Tea table for interactive
// programs. headers name the columns; missing headers are left blank.
func (t *Table) Model(headers ...string) table.Model {
	widths := t.widths()
	for len(widths) < len(headers) {
		widths = append(widths, 0)
	}

	cols := make([]table.Column, len(widths))
	for i, w := range widths {
		title := ""
		if i < len(headers) {
			title = headers[i]
		}
		cols[i] = table.Column{Title: title, Width: max(w, lipgloss.Width(title))}
	}

	rows := make([]table.Row, len(t.rows))
	for i, r := range t.rows {
		row := make(table.Row, len(cols))
		copy(row, r)
		rows[i] = row
	}

	m := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	m.SetStyles(s)
	return m
}

func (t *Table) widths() []int {
	cols := 0
	for _, r := range t.rows {
		cols = max(cols, len(r))
	}

	widths := make([]int, cols)
	for _, r := range t.rows {
		for i, cell := range r {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	for i, w := range t.fixed {
		if i < cols && w > 0 {
			widths[i] = w
		}
	}
	return widths
}

// KVGroup prints key-value pairs with keys padded to the widest key.
type KVGroup struct {
	p     *Printer
	pairs [][2]string
}

// NewKVGroup creates an empty group.
func (p *Printer) NewKVGroup() *KVGroup {
	return &KVGroup{p: p}
}

// Add appends a pair.
func (g *KVGroup) Add(key, value string) {
	g.pairs = append(g.pairs, [2]string{key, value})
}

// Render returns "  key: value" lines with faint, padded keys.
func (g *KVGroup) Render() string {
	width := 0
	for _, kv := range g.pairs {
		width = max(width, lipgloss.Width(kv[0]))
	}

	faint := g.p.st().faint
	var b strings.Builder
	for _, kv := range g.pairs {
		key := kv[0] + strings.Repeat(" ", width-lipgloss.Width(kv[0]))
		b.WriteString("  " + faint.Render(key) + ": " + kv[1] + "\n")
	}
	return b.String()
}

// Print writes the group to the printer.
func (g *KVGroup) Print() {
	if out := g.Render(); out != "" {
		g.p.write(out)
	}
}

// NewTable creates a table on the default printer.
func NewTable() *Table { return Default().NewTable() }

// NewAlignedTable creates a fixed-width table on the default printer.
func NewAlignedTable(widths ...int) *Table { return Default().NewAlignedTable(widths...) }

// NewKVGroup creates a key-value group on the default printer.
func NewKVGroup() *KVGroup { return Default().NewKVGroup() }
