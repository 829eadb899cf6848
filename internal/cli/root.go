package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/pintui/internal/config"
	"github.com/rileyhilliard/pintui/internal/logger"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	noColor     bool
	verbose     bool
	machineMode bool
)

// settings and printer are set up by PersistentPreRunE before any command runs.
var (
	settings *config.Settings
	printer  *pintui.Printer
)

var rootCmd = &cobra.Command{
	Use:   "pintui",
	Short: "Terminal presentation toolkit: messages, layout and progress",
	Long: `pintui renders status messages, layout elements and progress indicators
with one set of icons, colors and spacing.

The CLI shows the toolkit in action and exposes its formatting utilities:

  pintui demo                 walk through every component
  pintui size 1.5GB           parse and render byte sizes
  pintui duration 90s         render durations
  pintui truncate <path>      shorten long paths
  pintui tokens               dump icons and colors`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	DisableSuggestions: true,
	PersistentPreRunE:  setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .pintui.yaml or ~/.config/pintui/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output where supported")
}

// setup loads settings and builds the printer every command writes through.
func setup(cmd *cobra.Command, args []string) error {
	log := logger.NewWriterLogger("[pintui]", cmd.ErrOrStderr(), verbose)
	logger.SetDefault(log)

	s, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if noColor {
		s.Color = config.ColorNever
	}
	settings = s
	log.Debug("settings: color=%s spinner=%s interval=%s bar_width=%d",
		s.Color, s.SpinnerStyle, s.Interval, s.BarWidth)

	opts := append(pintui.SettingsOptions(s), pintui.WithLogger(log))
	printer = pintui.NewPrinter(cmd.OutOrStdout(), opts...)
	pintui.SetDefault(printer)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI with the given arguments and streams. Errors are
// printed to errOut, as JSON when --json is set.
func run(args []string, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if machineMode {
		_ = WriteJSONFromError(out, err)
	} else {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		if isUnknownCommandError(err) {
			msg += suggestCommands(extractUnknownCommand(err))
			msg += "Run 'pintui --help' for usage.\n"
		}
		fmt.Fprint(errOut, msg)
	}
	return err
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// suggestCommands returns a "Did you mean" line for a mistyped command name,
// or "" when nothing registered is close enough.
func suggestCommands(name string) string {
	if name == "" {
		return ""
	}
	suggestions := rootCmd.SuggestionsFor(name)
	if len(suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf("Did you mean %s?\n", strings.Join(suggestions, ", "))
}

// extractUnknownCommand returns the quoted command name from a cobra
// "unknown command" error, or "" when there is none.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
