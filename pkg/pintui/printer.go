package pintui

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/pintui/internal/config"
	"github.com/rileyhilliard/pintui/internal/logger"
	"golang.org/x/term"
)

const (
	// DefaultInterval is the spinner redraw cadence.
	DefaultInterval = 80 * time.Millisecond
	// DefaultBarWidth is the number of cells in a progress bar.
	DefaultBarWidth = 40
)

// Printer writes styled output to a single writer. All package-level
// functions delegate to the default printer; tests build printers over
// buffers.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	r      *lipgloss.Renderer
	styles styles
	color  *bool

	animate  *bool
	interval time.Duration
	frames   []string
	barWidth int
	log      logger.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor forces color on or off regardless of what the writer supports.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = &enabled
	}
}

// WithAnimation forces spinner and bar redraws on or off. By default they
// are enabled only when the writer is a terminal.
func WithAnimation(enabled bool) Option {
	return func(p *Printer) {
		p.animate = &enabled
	}
}

// WithInterval sets the spinner redraw cadence.
func WithInterval(d time.Duration) Option {
	return func(p *Printer) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithSpinnerStyle selects a spinner frame set by name (see config.SpinnerStyles).
// Unknown names keep the braille default.
func WithSpinnerStyle(name string) Option {
	return func(p *Printer) {
		if frames, ok := spinnerFrames(name); ok {
			p.frames = frames
		}
	}
}

// WithBarWidth sets the number of cells in progress bars.
func WithBarWidth(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.barWidth = n
		}
	}
}

// WithLogger routes debug output (color profile, spinner lifecycle) to l.
func WithLogger(l logger.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:      w,
		interval: DefaultInterval,
		frames:   spinner.MiniDot.Frames,
		barWidth: DefaultBarWidth,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.bind(w)
	return p
}

// bind attaches a renderer for w and rebuilds styles. Callers hold p.mu
// or own p exclusively.
func (p *Printer) bind(w io.Writer) {
	p.out = w
	p.r = lipgloss.NewRenderer(w)
	if p.color != nil {
		if *p.color {
			p.r.SetColorProfile(termenv.ANSI)
		} else {
			p.r.SetColorProfile(termenv.Ascii)
		}
	}
	p.styles = newStyles(p.r)
	p.log.Debug("color profile %s", profileName(p.r.ColorProfile()))
}

// SetOutput rebinds the printer to w. Color detection is redone for w
// unless color was forced with WithColor.
func (p *Printer) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bind(w)
}

// Writer returns the writer the printer is bound to.
func (p *Printer) Writer() io.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out
}

// ColorEnabled reports whether output carries ANSI styling.
func (p *Printer) ColorEnabled() bool {
	return p.renderer().ColorProfile() != termenv.Ascii
}

// Animated reports whether spinners and bars redraw in place.
func (p *Printer) Animated() bool {
	if p.animate != nil {
		return *p.animate
	}
	return isTerminal(p.Writer())
}

func (p *Printer) renderer() *lipgloss.Renderer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r
}

func (p *Printer) st() styles {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.styles
}

// write sends s to the output in one call so concurrent spinner frames and
// messages never interleave mid-line. Write errors are ignored.
func (p *Printer) write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// spinnerFrames maps a configured style name to bubbles frame sets.
func spinnerFrames(name string) ([]string, bool) {
	var s spinner.Spinner
	switch name {
	case "braille":
		s = spinner.MiniDot
	case "dots":
		s = spinner.Dot
	case "line":
		s = spinner.Line
	case "pulse":
		s = spinner.Pulse
	case "points":
		s = spinner.Points
	case "meter":
		s = spinner.Meter
	case "globe":
		s = spinner.Globe
	case "moon":
		s = spinner.Moon
	default:
		return nil, false
	}
	frames := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		frames[i] = strings.TrimRight(f, " ")
	}
	return frames, true
}

// StyleFrames returns the frames of a named spinner style.
func StyleFrames(name string) ([]string, bool) {
	return spinnerFrames(name)
}

var (
	defaultOnce    sync.Once
	defaultMu      sync.RWMutex
	defaultPrinter *Printer
)

// Init creates the process-wide default printer on stdout from PINTUI_*,
// NO_COLOR, CLICOLOR and CLICOLOR_FORCE. Extra options are applied last.
// Only the first call (or the first use of Default) has an effect.
func Init(opts ...Option) {
	defaultOnce.Do(func() {
		s, err := config.FromEnv()
		if err == nil {
			err = s.Validate()
		}
		l := logger.Default()
		if err != nil {
			l.Warn("ignoring invalid pintui environment: %v", err)
			s = config.DefaultSettings()
		}
		all := append(SettingsOptions(s), WithLogger(l))
		all = append(all, opts...)

		defaultMu.Lock()
		defaultPrinter = NewPrinter(os.Stdout, all...)
		defaultMu.Unlock()
	})
}

// SettingsOptions translates loaded settings into printer options.
func SettingsOptions(s *config.Settings) []Option {
	opts := []Option{
		WithSpinnerStyle(s.SpinnerStyle),
		WithInterval(s.Interval),
		WithBarWidth(s.BarWidth),
	}
	switch s.Color {
	case config.ColorAlways:
		opts = append(opts, WithColor(true))
	case config.ColorNever:
		opts = append(opts, WithColor(false))
	}
	return opts
}

// Default returns the process-wide printer, initializing it on first use.
func Default() *Printer {
	Init()
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPrinter
}

// SetDefault replaces the process-wide printer. A later Init is a no-op.
func SetDefault(p *Printer) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPrinter = p
}

// SetOutput rebinds the default printer to w.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}
