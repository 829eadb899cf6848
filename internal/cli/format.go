package cli

import (
	"strconv"
	"strings"

	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	sizeRawBytes bool
	truncateMax  int
)

// sizeCmd parses or renders a byte size
var sizeCmd = &cobra.Command{
	Use:   "size <bytes|size>",
	Short: "Parse or render a byte size",
	Long: `Render a raw byte count as a human-readable size, or parse a size with a
unit back into bytes. Units are powers of 1024 and case-insensitive.

Examples:
  pintui size 1536          # 1.5 KB
  pintui size 1.5GB         # 1,610,612,736 bytes
  pintui size 10mb --bytes  # 10485760`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sizeCommand(cmd, args[0])
	},
}

// durationCmd renders a duration
var durationCmd = &cobra.Command{
	Use:   "duration <duration|seconds>",
	Short: "Render a duration",
	Long: `Render a Go duration or a number of seconds the way progress output does.

Examples:
  pintui duration 750ms     # 750ms
  pintui duration 90        # 1m 30s
  pintui duration 2h5m      # 2h 5m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return durationCommand(cmd, args[0])
	},
}

// truncateCmd shortens a long path
var truncateCmd = &cobra.Command{
	Use:   "truncate <path>",
	Short: "Shorten a long path",
	Long: `Shorten a path by replacing its head with "...", cutting at a separator
when one falls inside the kept tail.

Examples:
  pintui truncate /very/long/path/to/some/file.txt --max 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return truncateCommand(cmd, args[0], truncateMax)
	},
}

func init() {
	sizeCmd.Flags().BoolVar(&sizeRawBytes, "bytes", false, "print the raw byte count")
	truncateCmd.Flags().IntVar(&truncateMax, "max", 40, "maximum length of the result")

	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(truncateCmd)
}

// sizeResult is the --json payload of the size command.
type sizeResult struct {
	Input string `json:"input"`
	Bytes uint64 `json:"bytes"`
	Human string `json:"human"`
}

func sizeCommand(cmd *cobra.Command, arg string) error {
	n, err := parseSizeArg(arg)
	if err != nil {
		return err
	}

	if MachineMode() {
		return WriteJSONSuccess(cmd.OutOrStdout(), sizeResult{Input: arg, Bytes: n, Human: pintui.HumanSize(n)})
	}

	switch {
	case sizeRawBytes:
		cmd.Println(strconv.FormatUint(n, 10))
	case isPlainNumber(arg):
		cmd.Println(pintui.HumanSize(n))
	default:
		unit := "bytes"
		if n == 1 {
			unit = "byte"
		}
		cmd.Println(pintui.HumanCount(n) + " " + unit)
	}
	return nil
}

// isPlainNumber reports whether arg carries no unit.
func isPlainNumber(arg string) bool {
	s := strings.TrimSpace(arg)
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	}) < 0
}

// durationResult is the --json payload of the duration command.
type durationResult struct {
	Input   string  `json:"input"`
	Seconds float64 `json:"seconds"`
	Human   string  `json:"human"`
}

func durationCommand(cmd *cobra.Command, arg string) error {
	secs, err := parseDurationArg(arg)
	if err != nil {
		return err
	}

	human := pintui.HumanSeconds(secs)
	if MachineMode() {
		return WriteJSONSuccess(cmd.OutOrStdout(), durationResult{Input: arg, Seconds: secs, Human: human})
	}
	cmd.Println(human)
	return nil
}

// truncateResult is the --json payload of the truncate command.
type truncateResult struct {
	Input  string `json:"input"`
	Max    int    `json:"max"`
	Result string `json:"result"`
}

func truncateCommand(cmd *cobra.Command, path string, maxLen int) error {
	short := pintui.TruncatePath(path, maxLen)
	if MachineMode() {
		return WriteJSONSuccess(cmd.OutOrStdout(), truncateResult{Input: path, Max: maxLen, Result: short})
	}
	cmd.Println(short)
	return nil
}
