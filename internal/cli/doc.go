// Package cli implements the pintui command-line interface.
//
// Every command writes through a single *pintui.Printer built by the root
// command's PersistentPreRunE from the loaded settings, so --no-color,
// PINTUI_* variables and .pintui.yaml apply uniformly.
//
// # Command Structure
//
//	pintui demo               - Walk through every component
//	pintui size <value>       - Parse or render a byte size
//	pintui duration <value>   - Render a duration
//	pintui truncate <path>    - Shorten a path
//	pintui tokens             - Dump icons, colors and spinner frames
//	pintui version            - Print build information
//	pintui completion <shell> - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --no-color, --verbose, --json) are defined on
// the root command. With --json, commands that produce data and all errors
// are written as a JSONEnvelope on stdout.
package cli
