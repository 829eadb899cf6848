package pintui

import (
	"os"

	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// TerminalWidth returns the width of the terminal on stdout, or DefaultWidth.
func TerminalWidth() int {
	w, _ := terminalSize(os.Stdout)
	return w
}

// TerminalHeight returns the height of the terminal on stdout, or DefaultHeight.
func TerminalHeight() int {
	_, h := terminalSize(os.Stdout)
	return h
}

func terminalSize(f *os.File) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
