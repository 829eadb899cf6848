package pintui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerHandle is a running single-line progress indicator. It stops
// exactly once, through Success, Error, Warn, Clear or Close; later
// terminal calls are no-ops.
type SpinnerHandle struct {
	p        *Printer
	mu       sync.Mutex
	msg      string
	prefix   string
	frames   []string
	frame    int
	running  bool
	width    int
	rendered bool
	started  time.Time

	stopOnce sync.Once
	stopChan chan struct{}
	doneChan chan struct{}
}

// Spinner starts a spinner showing msg.
//
//	s := p.Spinner("Loading configuration...")
//	defer s.Close()
//	// ... do work ...
//	s.Success("Configuration loaded")
func (p *Printer) Spinner(msg string) *SpinnerHandle {
	return p.newSpinner("", msg)
}

func (p *Printer) newSpinner(prefix, msg string) *SpinnerHandle {
	s := &SpinnerHandle{
		p:       p,
		msg:     msg,
		prefix:  prefix,
		frames:  p.frames,
		running: true,
		started: time.Now(),
	}
	p.log.Debug("spinner started: %s%s", prefix, msg)

	if p.Animated() && len(s.frames) > 0 {
		s.stopChan = make(chan struct{})
		s.doneChan = make(chan struct{})
		s.render()
		go s.animate(p.interval)
	}
	return s
}

// WithSpinner runs fn with a spinner and guarantees it is stopped when fn
// returns, fails or panics. fn may conclude the spinner itself; otherwise
// it is cleared.
func (p *Printer) WithSpinner(msg string, fn func(*SpinnerHandle) error) error {
	s := p.Spinner(msg)
	defer s.Close()
	return fn(s)
}

// UpdateMessage replaces the message while the spinner is running.
func (s *SpinnerHandle) UpdateMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.msg = msg
}

// Message returns the current message.
func (s *SpinnerHandle) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}

// Running reports whether the spinner has not been stopped yet.
func (s *SpinnerHandle) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the time since the spinner started.
func (s *SpinnerHandle) Elapsed() time.Duration {
	return time.Since(s.started)
}

// Success stops the spinner and prints "✓ msg".
func (s *SpinnerHandle) Success(msg string) {
	s.finish(s.p.st().success, SymbolOK, msg)
}

// Error stops the spinner and prints "✗ msg".
func (s *SpinnerHandle) Error(msg string) {
	s.finish(s.p.st().err, SymbolFail, msg)
}

// Warn stops the spinner and prints "⚠ msg".
func (s *SpinnerHandle) Warn(msg string) {
	s.finish(s.p.st().warn, SymbolWarn, msg)
}

// Clear stops the spinner and erases it without printing a conclusion.
func (s *SpinnerHandle) Clear() {
	if !s.stop() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rendered {
		s.p.write(s.erase())
	}
	s.p.log.Debug("spinner cleared after %s", HumanDuration(s.Elapsed()))
}

// Close clears the spinner if it is still running. It always returns nil
// and is meant for defer.
func (s *SpinnerHandle) Close() error {
	s.Clear()
	return nil
}

func (s *SpinnerHandle) finish(style lipgloss.Style, symbol, msg string) {
	if !s.stop() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	if s.rendered {
		b.WriteString(s.erase())
	}
	b.WriteString(style.Render(symbol))
	b.WriteString(" ")
	b.WriteString(s.prefix)
	b.WriteString(msg)
	b.WriteString("\n")
	s.p.write(b.String())
	s.p.log.Debug("spinner finished after %s: %s", HumanDuration(s.Elapsed()), msg)
}

// stop flips the state to stopped and waits for the animation goroutine.
// Only the first caller gets true.
func (s *SpinnerHandle) stop() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}
	s.running = false
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		if s.stopChan != nil {
			close(s.stopChan)
			<-s.doneChan
		}
	})
	return true
}

func (s *SpinnerHandle) animate(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(s.frames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *SpinnerHandle) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	line := s.p.st().accent.Render(s.frames[s.frame]) + " " + s.prefix + s.msg
	w := lipgloss.Width(line)

	out := "\r" + line
	if pad := s.width - w; pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	if w > s.width {
		s.width = w
	}
	s.p.write(out)
	s.rendered = true
}

// erase blanks the widest line drawn so far. Callers hold s.mu.
func (s *SpinnerHandle) erase() string {
	return "\r" + strings.Repeat(" ", s.width+10) + "\r"
}

// Spinner starts a spinner on the default printer.
func Spinner(msg string) *SpinnerHandle { return Default().Spinner(msg) }

// WithSpinner runs fn under a spinner on the default printer.
func WithSpinner(msg string, fn func(*SpinnerHandle) error) error {
	return Default().WithSpinner(msg, fn)
}
