package pintui

import "strings"

// ListGroup collects the items of a titled group.
type ListGroup struct {
	items []listItem
}

type listItem struct {
	icon, label, detail string
}

// Item adds "icon label  detail". Icon and detail may be empty.
func (g *ListGroup) Item(icon, label, detail string) {
	g.items = append(g.items, listItem{icon: icon, label: label, detail: detail})
}

// ItemPlain adds a bare label.
func (g *ListGroup) ItemPlain(label string) {
	g.items = append(g.items, listItem{label: label})
}

// Len returns the number of items added.
func (g *ListGroup) Len() int {
	return len(g.items)
}

// Group prints a bold title followed by the items added by build and a
// blank line. Nothing is printed when build adds no items.
//
//	p.Group("Installed", func(g *pintui.ListGroup) {
//		g.Item(p.IconOK(), "ripgrep", "14.1.0")
//	})
func (p *Printer) Group(title string, build func(*ListGroup)) {
	g := &ListGroup{}
	build(g)
	if len(g.items) == 0 {
		return
	}

	s := p.st()
	var b strings.Builder
	b.WriteString("  " + s.bold.Render(title) + "\n")
	for _, it := range g.items {
		b.WriteString("    ")
		if it.icon != "" {
			b.WriteString(it.icon + " ")
		}
		b.WriteString(it.label)
		if it.detail != "" {
			b.WriteString("  " + s.faint.Render(it.detail))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	p.write(b.String())
}

// Group prints a list group on the default printer.
func Group(title string, build func(*ListGroup)) { Default().Group(title, build) }
