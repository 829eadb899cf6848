package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/pintui/internal/config"
	"github.com/rileyhilliard/pintui/internal/errors"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tokensFormat selects the output encoding of the tokens command
var tokensFormat string

// tokensCmd dumps the design tokens
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Dump design tokens (icons, colors, spinner frames)",
	Long: `Print the icons, palette and spinner frame sets as YAML or JSON, for
tools that want to match pintui output.

Examples:
  pintui tokens
  pintui tokens --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tokensCommand(cmd.OutOrStdout(), tokensFormat)
	},
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFormat, "format", "yaml", "output format (yaml or json)")
	rootCmd.AddCommand(tokensCmd)
}

// designTokens is the document written by the tokens command.
type designTokens struct {
	Icons    []pintui.Token      `yaml:"icons" json:"icons"`
	Colors   []pintui.Token      `yaml:"colors" json:"colors"`
	Spinners map[string][]string `yaml:"spinners" json:"spinners"`
	Rule     string              `yaml:"rule" json:"rule"`
}

func collectTokens() designTokens {
	spinners := make(map[string][]string, len(config.SpinnerStyles))
	for _, name := range config.SpinnerStyles {
		if frames, ok := pintui.StyleFrames(name); ok {
			spinners[name] = frames
		}
	}
	return designTokens{
		Icons:    pintui.IconTokens(),
		Colors:   pintui.ColorTokens(),
		Spinners: spinners,
		Rule:     pintui.Rule,
	}
}

func tokensCommand(w io.Writer, format string) error {
	tokens := collectTokens()

	if MachineMode() {
		return WriteJSONSuccess(w, tokens)
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokens); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	default:
		return errors.New(errors.ErrFormat,
			fmt.Sprintf("Unknown token format: %q", format),
			"Use --format yaml or --format json")
	}
}
