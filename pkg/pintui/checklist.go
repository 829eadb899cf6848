package pintui

import "github.com/charmbracelet/lipgloss"

// CheckOK prints "  ✓ msg".
func (p *Printer) CheckOK(msg string) { p.checkLine(p.IconOK(), msg) }

// CheckFail prints "  ✗ msg".
func (p *Printer) CheckFail(msg string) { p.checkLine(p.IconFail(), msg) }

// CheckSkip prints "  ○ msg".
func (p *Printer) CheckSkip(msg string) { p.checkLine(p.IconSkip(), msg) }

// CheckPending prints "  → msg".
func (p *Printer) CheckPending(msg string) { p.checkLine(p.IconArrow(), msg) }

// CheckItem prints a checklist line with a custom icon and color.
func (p *Printer) CheckItem(icon string, color lipgloss.Color, msg string) {
	p.checkLine(p.Style(color).Render(icon), msg)
}

func (p *Printer) checkLine(icon, msg string) {
	p.write("  " + icon + " " + msg + "\n")
}

// CheckOK prints a passed checklist item on the default printer.
func CheckOK(msg string) { Default().CheckOK(msg) }

// CheckFail prints a failed checklist item on the default printer.
func CheckFail(msg string) { Default().CheckFail(msg) }

// CheckSkip prints a skipped checklist item on the default printer.
func CheckSkip(msg string) { Default().CheckSkip(msg) }

// CheckPending prints a pending checklist item on the default printer.
func CheckPending(msg string) { Default().CheckPending(msg) }

// CheckItem prints a custom checklist item on the default printer.
func CheckItem(icon string, color lipgloss.Color, msg string) { Default().CheckItem(icon, color, msg) }
