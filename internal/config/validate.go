package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/pintui/internal/errors"
)

// Validate checks the settings and returns a structured error for the first problem found.
func (s *Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode: %q", s.Color),
			"Use auto, always or never")
	}

	if !IsSpinnerStyle(s.SpinnerStyle) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown spinner style: %q", s.SpinnerStyle),
			"Pick one of: "+strings.Join(SpinnerStyles, ", "))
	}

	if s.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Spinner interval must be positive, got %s", s.Interval),
			"Use a Go duration like 80ms")
	}

	if s.BarWidth <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("bar_width must be positive, got %d", s.BarWidth),
			"Try 40")
	}

	if s.DividerWidth <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("divider_width must be positive, got %d", s.DividerWidth),
			"Try 40")
	}

	return nil
}

// IsSpinnerStyle reports whether name is a known spinner style.
func IsSpinnerStyle(name string) bool {
	for _, s := range SpinnerStyles {
		if s == name {
			return true
		}
	}
	return false
}
