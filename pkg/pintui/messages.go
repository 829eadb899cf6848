package pintui

import "fmt"

// Info prints "ℹ msg" with a blue icon.
//
//	pintui.Info("Processing 42 files...")
func (p *Printer) Info(msg string) {
	p.write(p.IconInfo() + " " + msg + "\n")
}

// Infof prints a formatted info message.
func (p *Printer) Infof(format string, a ...any) {
	p.Info(fmt.Sprintf(format, a...))
}

// Success prints "✓ msg" with a green icon.
func (p *Printer) Success(msg string) {
	p.write(p.IconOK() + " " + msg + "\n")
}

// Successf prints a formatted success message.
func (p *Printer) Successf(format string, a ...any) {
	p.Success(fmt.Sprintf(format, a...))
}

// Warn prints "⚠ msg" with a yellow icon.
func (p *Printer) Warn(msg string) {
	p.write(p.IconWarn() + " " + msg + "\n")
}

// Warnf prints a formatted warning.
func (p *Printer) Warnf(format string, a ...any) {
	p.Warn(fmt.Sprintf(format, a...))
}

// Error prints "✗ msg" with a red icon.
func (p *Printer) Error(msg string) {
	p.write(p.IconFail() + " " + msg + "\n")
}

// Errorf prints a formatted error.
func (p *Printer) Errorf(format string, a ...any) {
	p.Error(fmt.Sprintf(format, a...))
}

// Dim prints low-emphasis text indented by two spaces.
//
//	pintui.Success("Build complete")
//	pintui.Dim("Output: ./bin/myapp")
func (p *Printer) Dim(msg string) {
	p.write("  " + p.st().faint.Render(msg) + "\n")
}

// Dimf prints formatted dim text.
func (p *Printer) Dimf(format string, a ...any) {
	p.Dim(fmt.Sprintf(format, a...))
}

// Info prints an info message on the default printer.
func Info(msg string) { Default().Info(msg) }

// Infof prints a formatted info message on the default printer.
func Infof(format string, a ...any) { Default().Infof(format, a...) }

// Success prints a success message on the default printer.
func Success(msg string) { Default().Success(msg) }

// Successf prints a formatted success message on the default printer.
func Successf(format string, a ...any) { Default().Successf(format, a...) }

// Warn prints a warning on the default printer.
func Warn(msg string) { Default().Warn(msg) }

// Warnf prints a formatted warning on the default printer.
func Warnf(format string, a ...any) { Default().Warnf(format, a...) }

// Error prints an error on the default printer.
func Error(msg string) { Default().Error(msg) }

// Errorf prints a formatted error on the default printer.
func Errorf(format string, a ...any) { Default().Errorf(format, a...) }

// Dim prints dim text on the default printer.
func Dim(msg string) { Default().Dim(msg) }

// Dimf prints formatted dim text on the default printer.
func Dimf(format string, a ...any) { Default().Dimf(format, a...) }
