package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/rileyhilliard/pintui/internal/config"
	"github.com/rileyhilliard/pintui/internal/logger"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCLI runs the root command with args in an isolated environment and
// returns what it wrote to stdout and stderr.
func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateCLI(t)
	return runCLI(t, args...)
}

// runCLI runs the root command without touching the environment.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

// isolateCLI shields a test from the developer's shell, config files and
// flag values left behind by earlier runs.
func isolateCLI(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", logger.DebugEnv,
		"PINTUI_COLOR", "PINTUI_SPINNER_STYLE", "PINTUI_INTERVAL",
		"PINTUI_BAR_WIDTH", "PINTUI_DIVIDER_WIDTH",
	} {
		t.Setenv(key, "")
	}

	prevPrinter := pintui.Default()
	prevLogger := logger.Default()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		pintui.SetDefault(prevPrinter)
		logger.SetDefault(prevLogger)
		resetFlags(rootCmd)
	})
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeConfig creates .pintui.yaml in the working directory.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte(content), 0o644))
}
