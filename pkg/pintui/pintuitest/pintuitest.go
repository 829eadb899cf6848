// Package pintuitest provides capturing printers for tests.
package pintuitest

import (
	"bytes"
	"strings"
	"sync"

	"github.com/rileyhilliard/pintui/pkg/pintui"
)

// Buffer is a goroutine-safe bytes.Buffer. Spinner animation writes from
// its own goroutine, so plain buffers would race.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines returns the written output split on newlines, without the trailing
// empty element.
func (b *Buffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Reset discards the captured output.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// NewPrinter returns a colorless, non-animated printer and its capture buffer.
// Extra options are applied after the defaults.
func NewPrinter(opts ...pintui.Option) (*pintui.Printer, *Buffer) {
	buf := &Buffer{}
	all := append([]pintui.Option{
		pintui.WithColor(false),
		pintui.WithAnimation(false),
	}, opts...)
	return pintui.NewPrinter(buf, all...), buf
}
