package pintui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Header prints a blank line, the bold title and a faint rule eight
// cells longer than the title.
//
//	Configuration
//	─────────────────────
func (p *Printer) Header(title string) {
	s := p.st()
	rule := strings.Repeat(Rule, utf8.RuneCountInString(title)+8)
	p.write("\n" + s.bold.Render(title) + "\n" + s.faint.Render(rule) + "\n")
}

// Section prints a blank line and a cyan bold title.
func (p *Printer) Section(title string) {
	p.write("\n" + p.st().section.Render(title) + "\n")
}

// KV prints "  key: value" with a faint key.
func (p *Printer) KV(key, value string) {
	p.write("  " + p.st().faint.Render(key) + ": " + value + "\n")
}

// KVf prints a key-value pair with a formatted value.
func (p *Printer) KVf(key, format string, a ...any) {
	p.KV(key, fmt.Sprintf(format, a...))
}

// Step prints "[current/total] msg".
func (p *Printer) Step(current, total int, msg string) {
	marker := p.st().step.Render(stageMarker(current, total))
	p.write(marker + " " + msg + "\n")
}

// Stepf prints a step with a formatted message.
func (p *Printer) Stepf(current, total int, format string, a ...any) {
	p.Step(current, total, fmt.Sprintf(format, a...))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.write("\n")
}

// Divider prints a faint rule width cells wide. Nothing is printed when
// width is not positive.
func (p *Printer) Divider(width int) {
	if width <= 0 {
		return
	}
	p.write(p.st().faint.Render(strings.Repeat(Rule, width)) + "\n")
}

// Indent prints msg prefixed by two spaces per level.
func (p *Printer) Indent(level int, msg string) {
	p.write(indentation(level) + msg + "\n")
}

// Indentf prints an indented formatted message.
func (p *Printer) Indentf(level int, format string, a ...any) {
	p.Indent(level, fmt.Sprintf(format, a...))
}

func indentation(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat("  ", level)
}

// Header prints a header on the default printer.
func Header(title string) { Default().Header(title) }

// Section prints a section title on the default printer.
func Section(title string) { Default().Section(title) }

// KV prints a key-value pair on the default printer.
func KV(key, value string) { Default().KV(key, value) }

// KVf prints a key-value pair with a formatted value on the default printer.
func KVf(key, format string, a ...any) { Default().KVf(key, format, a...) }

// Step prints a step marker on the default printer.
func Step(current, total int, msg string) { Default().Step(current, total, msg) }

// Stepf prints a formatted step on the default printer.
func Stepf(current, total int, format string, a ...any) {
	Default().Stepf(current, total, format, a...)
}

// Blank prints an empty line on the default printer.
func Blank() { Default().Blank() }

// Divider prints a rule on the default printer.
func Divider(width int) { Default().Divider(width) }

// Indent prints an indented line on the default printer.
func Indent(level int, msg string) { Default().Indent(level, msg) }

// Indentf prints an indented formatted line on the default printer.
func Indentf(level int, format string, a ...any) { Default().Indentf(level, format, a...) }
