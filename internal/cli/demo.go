package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/pintui/internal/logger"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	demoDelay       time.Duration
	demoInteractive bool
	demoTUI         bool
)

// Prompt functions used by the interactive demo. Tests replace them.
var (
	promptConfirm = pintui.ConfirmDefault
	promptSelect  = pintui.Select
	promptInput   = pintui.InputDefault
)

// demoCmd walks through every component
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every pintui component",
	Long: `Print each component in turn: messages, layout, spinners, stage progress,
progress bar, checklists, diffs, tables and summaries.

Examples:
  pintui demo
  pintui demo --delay 0        # no pauses, useful in scripts
  pintui demo --interactive    # ask a few questions first
  pintui demo --tui            # stage progress as a Bubble Tea program`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if demoTUI {
			return runTUI(ctx, printer, cmd.OutOrStdout(), demoDelay)
		}
		return runDemo(ctx, printer, demoOptions{
			delay:        demoDelay,
			interactive:  demoInteractive,
			dividerWidth: settings.DividerWidth,
		})
	},
}

func init() {
	demoCmd.Flags().DurationVar(&demoDelay, "delay", 400*time.Millisecond, "pause between animated steps")
	demoCmd.Flags().BoolVar(&demoInteractive, "interactive", false, "ask questions before the walkthrough")
	demoCmd.Flags().BoolVar(&demoTUI, "tui", false, "run the stage demo as a full terminal program")
	rootCmd.AddCommand(demoCmd)
}

type demoOptions struct {
	delay        time.Duration
	interactive  bool
	dividerWidth int
}

// runDemo prints the full walkthrough on p.
func runDemo(ctx context.Context, p *pintui.Printer, opts demoOptions) error {
	log := logger.Default()
	title := "pintui demo"

	if opts.interactive {
		answers, err := askDemoQuestions()
		if err != nil {
			return err
		}
		if !answers.proceed {
			p.Warn("Demo skipped")
			return nil
		}
		title = answers.title
		log.Debug("interactive answers: title=%q speed=%d", answers.title, answers.speed)
	}

	p.Header(title)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"messages", func() error { demoMessages(p); return nil }},
		{"layout", func() error { demoLayout(p, opts.dividerWidth); return nil }},
		{"spinner", func() error { return demoSpinner(ctx, p, opts.delay) }},
		{"stages", func() error { return demoStageProgress(ctx, p, opts.delay) }},
		{"bar", func() error { return demoBar(ctx, p, opts.delay) }},
		{"lists", func() error { demoLists(p); return nil }},
		{"tables", func() error { demoTables(p); return nil }},
	}
	for _, s := range steps {
		log.Debug("demo step %s", s.name)
		if err := s.fn(); err != nil {
			return err
		}
	}

	p.Section("Summary")
	p.StatLine(
		pintui.StatItem{Count: len(steps), Label: "sections", Color: pintui.ColorSuccess},
		pintui.StatItem{Count: 0, Label: "failures", Color: pintui.ColorMuted},
	)
	p.Blank()
	p.Success("Demo complete")
	return nil
}

type demoAnswers struct {
	proceed bool
	title   string
	speed   int
}

func askDemoQuestions() (demoAnswers, error) {
	var a demoAnswers
	var err error

	if a.proceed, err = promptConfirm("Run the pintui demo?", true); err != nil || !a.proceed {
		return a, err
	}
	if a.title, err = promptInput("Header title", "pintui demo"); err != nil {
		return a, err
	}
	if a.speed, err = promptSelect("Spinner speed", []string{"normal", "slow", "fast"}); err != nil {
		return a, err
	}
	return a, nil
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func demoMessages(p *pintui.Printer) {
	p.Section("Messages")
	p.Info("Checking for updates")
	p.Success("Configuration is valid")
	p.Warn("Cache is older than 7 days")
	p.Error("Could not reach mirror.example.com")
	p.Dim("Retrying with the primary mirror")
	p.Blank()
}

func demoLayout(p *pintui.Printer, dividerWidth int) {
	p.Section("Layout")
	p.KV("Profile", "default")
	p.KVf("Workers", "%d", 4)
	p.Step(1, 3, "Prepare workspace")
	p.Step(2, 3, "Build")
	p.Step(3, 3, "Verify")
	p.Indent(1, "nested once")
	p.Indentf(2, "nested %s", "twice")
	p.Divider(dividerWidth)
	p.Blank()
}

func demoSpinner(ctx context.Context, p *pintui.Printer, delay time.Duration) error {
	p.Section("Spinner")

	s := p.Spinner("Resolving dependencies")
	defer s.Close()
	if err := pause(ctx, delay); err != nil {
		s.Error("Interrupted")
		return err
	}
	s.UpdateMessage("Downloading 12 packages")
	if err := pause(ctx, delay); err != nil {
		s.Error("Interrupted")
		return err
	}
	s.Success(fmt.Sprintf("Dependencies ready (%s)", pintui.Pluralize(12, "package", "packages")))

	err := p.WithSpinner("Checking lockfile", func(h *pintui.SpinnerHandle) error {
		if err := pause(ctx, delay); err != nil {
			return err
		}
		h.Warn("Lockfile has 1 outdated entry")
		return nil
	})
	if err != nil {
		return err
	}
	p.Blank()
	return nil
}

func demoStageProgress(ctx context.Context, p *pintui.Printer, delay time.Duration) error {
	p.Section("Stages")

	stages := p.NewStageProgress(len(demoStages))
	for _, st := range demoStages {
		if st.outcome == pintui.ComponentSkipped {
			stages.Skip(st.label)
			continue
		}

		s := stages.Next(st.label)
		if err := pause(ctx, delay); err != nil {
			s.Error("Interrupted")
			return err
		}
		switch st.outcome {
		case pintui.ComponentWarned:
			s.Warn(st.done)
		case pintui.ComponentFailed:
			s.Error(st.done)
		default:
			s.Success(st.done)
		}
	}
	p.Blank()
	return nil
}

func demoBar(ctx context.Context, p *pintui.Printer, delay time.Duration) error {
	p.Section("Progress bar")

	const chunks = 8
	chunk := 16 * pintui.MB
	total := int64(chunks * chunk)

	bar := p.Bar(total, "Copying")
	for i := 0; i < chunks; i++ {
		if err := pause(ctx, delay/chunks); err != nil {
			bar.Error("Copy interrupted")
			return err
		}
		bar.Add64(int64(chunk))
	}
	bar.Success("Copied " + pintui.HumanSize(uint64(total)))
	p.Blank()
	return nil
}

func demoLists(p *pintui.Printer) {
	p.Section("Checklist")
	p.CheckOK("Go toolchain found")
	p.CheckFail("Docker daemon not running")
	p.CheckSkip("GPU drivers (not needed)")
	p.CheckPending("Waiting on network")
	p.Blank()

	p.Section("Diff")
	p.DiffAdded("spinner_style: dots")
	p.DiffRemoved("spinner_style: braille")
	p.DiffChanged("bar_width: 40 -> 60")
	p.DiffContext("color: auto")
	p.Blank()

	p.Section("Dry run")
	p.DryRunAction("write", ".pintui.yaml")
	p.DryRunAction("delete", "~/.cache/pintui")
	p.DryRunFooter()
	p.Blank()

	p.Group("Installed", func(g *pintui.ListGroup) {
		g.Item(p.IconOK(), "ripgrep", "14.1.0")
		g.Item(p.IconOK(), "fd", "10.2.0")
		g.Item(p.IconWarn(), "jq", "1.6 (1.7 available)")
		g.ItemPlain("bat")
	})
}

func demoTables(p *pintui.Printer) {
	p.Section("Table")
	t := p.NewTable()
	t.Row("NAME", "SIZE", "ELAPSED")
	t.Row("assets.tar", pintui.HumanSize(48*pintui.MB), pintui.HumanDuration(1500*time.Millisecond))
	t.Row("db.dump", pintui.HumanSize(3*pintui.GB), pintui.HumanDuration(125*time.Second))
	t.Row("notes.txt", pintui.HumanSize(912), pintui.HumanDuration(40*time.Millisecond))
	t.Print()
	p.Blank()

	p.Section("Details")
	g := p.NewKVGroup()
	g.Add("Path", pintui.TruncatePath("/home/user/projects/pintui/internal/config/loader.go", 32))
	g.Add("Files", pintui.HumanCount(1234567))
	g.Add("Total", pintui.HumanSize(5*pintui.TB))
	g.Print()
	p.Blank()
}
