package pintui

// DiffAdded prints "  + line" in green.
func (p *Printer) DiffAdded(line string) {
	p.write("  " + p.IconAdd() + " " + p.st().success.Render(line) + "\n")
}

// DiffRemoved prints "  - line" in red.
func (p *Printer) DiffRemoved(line string) {
	p.write("  " + p.IconRemove() + " " + p.st().err.Render(line) + "\n")
}

// DiffChanged prints "  ~ line" in yellow.
func (p *Printer) DiffChanged(line string) {
	p.write("  " + p.IconChange() + " " + p.st().warn.Render(line) + "\n")
}

// DiffContext prints an unchanged line, faint and aligned with the markers.
func (p *Printer) DiffContext(line string) {
	p.write("  " + p.st().faint.Render("  "+line) + "\n")
}

// DiffAdded prints an added line on the default printer.
func DiffAdded(line string) { Default().DiffAdded(line) }

// DiffRemoved prints a removed line on the default printer.
func DiffRemoved(line string) { Default().DiffRemoved(line) }

// DiffChanged prints a changed line on the default printer.
func DiffChanged(line string) { Default().DiffChanged(line) }

// DiffContext prints a context line on the default printer.
func DiffContext(line string) { Default().DiffContext(line) }
