package config

import "time"

// Color modes accepted by Settings.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SpinnerStyles lists the frame sets a spinner can be configured with.
// "braille" is the default and matches the stage spinner frames.
var SpinnerStyles = []string{"braille", "dots", "line", "pulse", "points", "meter", "globe", "moon"}

// Settings holds the presentation settings shared by every printer.
type Settings struct {
	// Color is one of auto, always or never.
	Color string `yaml:"color" mapstructure:"color"`

	// SpinnerStyle names the spinner frame set.
	SpinnerStyle string `yaml:"spinner_style" mapstructure:"spinner_style"`

	// Interval is the redraw cadence for animated spinners.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// BarWidth is the number of cells in a progress bar.
	BarWidth int `yaml:"bar_width" mapstructure:"bar_width"`

	// DividerWidth is the default rule width for Divider in the demo and CLI.
	DividerWidth int `yaml:"divider_width" mapstructure:"divider_width"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Color:        ColorAuto,
		SpinnerStyle: "braille",
		Interval:     80 * time.Millisecond,
		BarWidth:     40,
		DividerWidth: 40,
	}
}
