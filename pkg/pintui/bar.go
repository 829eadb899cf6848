package pintui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
)

// Bar cell characters.
const (
	barFull  = '━'
	barEmpty = '─'
)

// BarHandle is a determinate progress bar:
//
//	Downloading  50% [━━━━━━━━━━──────────] (50/100)
//
// Add and Set are not clamped to the total. Finish and Clear are terminal;
// later updates are ignored.
type BarHandle struct {
	p        *Printer
	mu       sync.Mutex
	desc     string
	total    int64
	current  int64
	model    progress.Model
	animate  bool
	done     bool
	rendered bool
	width    int
}

// Bar creates a progress bar for total units of work.
//
//	bar := p.Bar(100, "Downloading")
//	for i := 0; i < 100; i++ {
//		bar.Add(1)
//	}
//	bar.Success("Downloaded")
func (p *Printer) Bar(total int64, description string) *BarHandle {
	m := progress.New(
		progress.WithSolidFill(string(ColorAccent)),
		progress.WithWidth(p.barWidth),
		progress.WithoutPercentage(),
		progress.WithColorProfile(p.renderer().ColorProfile()),
	)
	m.Full = barFull
	m.Empty = barEmpty
	m.EmptyColor = string(ColorInfo)

	b := &BarHandle{
		p:       p,
		desc:    description,
		total:   total,
		model:   m,
		animate: p.Animated(),
	}
	if b.animate {
		b.mu.Lock()
		b.redraw()
		b.mu.Unlock()
	}
	return b
}

// Add advances the bar by n.
func (b *BarHandle) Add(n int) { b.Add64(int64(n)) }

// Add64 advances the bar by n.
func (b *BarHandle) Add64(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.current += n
	if b.animate {
		b.redraw()
	}
}

// Set moves the bar to n.
func (b *BarHandle) Set(n int) { b.Set64(int64(n)) }

// Set64 moves the bar to n.
func (b *BarHandle) Set64(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.current = n
	if b.animate {
		b.redraw()
	}
}

// Current returns the current position.
func (b *BarHandle) Current() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Total returns the total.
func (b *BarHandle) Total() int64 {
	return b.total
}

// Finish draws the bar at its final position and ends the line.
func (b *BarHandle) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finish()
}

// Clear erases the bar.
func (b *BarHandle) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.done = true
	if b.rendered {
		b.p.write("\r" + strings.Repeat(" ", b.width) + "\r")
	}
}

// Success finishes the bar and prints "✓ msg".
func (b *BarHandle) Success(msg string) {
	b.conclude(b.p.IconOK(), msg)
}

// Error finishes the bar and prints "✗ msg".
func (b *BarHandle) Error(msg string) {
	b.conclude(b.p.IconFail(), msg)
}

func (b *BarHandle) conclude(icon, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finish() {
		b.p.write(icon + " " + msg + "\n")
	}
}

// finish reports whether this call ended the bar. Callers hold b.mu.
func (b *BarHandle) finish() bool {
	if b.done {
		return false
	}
	b.done = true
	line := b.line()
	if b.rendered {
		line = "\r" + line
	}
	b.p.write(line + "\n")
	return true
}

// redraw repaints the bar in place. Callers hold b.mu.
func (b *BarHandle) redraw() {
	line := b.line()
	w := ansi.StringWidth(line)
	out := "\r" + line
	if pad := b.width - w; pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	if w > b.width {
		b.width = w
	}
	b.p.write(out)
	b.rendered = true
}

// line renders "desc pct% [bar] (n/total)". Callers hold b.mu.
func (b *BarHandle) line() string {
	ratio := 1.0
	if b.total > 0 {
		ratio = float64(b.current) / float64(b.total)
	}
	ratio = max(0, min(1, ratio))

	bar := b.model.ViewAs(ratio)
	if !b.p.ColorEnabled() {
		bar = ansi.Strip(bar)
	}

	line := fmt.Sprintf("%3d%% [%s] (%d/%d)", int(ratio*100), bar, b.current, b.total)
	if b.desc != "" {
		line = b.desc + " " + line
	}
	return line
}

// Bar creates a progress bar on the default printer.
func Bar(total int64, description string) *BarHandle {
	return Default().Bar(total, description)
}
