package pintui

// DryRunAction prints what would happen: "  → verb detail".
func (p *Printer) DryRunAction(verb, detail string) {
	p.write("  " + p.IconArrow() + " " + verb + " " + detail + "\n")
}

// DryRunFooter prints the closing notice of a dry run.
func (p *Printer) DryRunFooter() {
	p.write(p.IconWarn() + " Dry run — no changes made\n")
}

// DryRunAction prints a dry-run action on the default printer.
func DryRunAction(verb, detail string) { Default().DryRunAction(verb, detail) }

// DryRunFooter prints the dry-run footer on the default printer.
func DryRunFooter() { Default().DryRunFooter() }
