package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"golang.org/x/term"
)

// demoStage is one scripted step of the stage demos.
type demoStage struct {
	label   string
	done    string
	outcome pintui.ComponentState
}

var demoStages = []demoStage{
	{label: "Resolving modules", done: "Modules resolved", outcome: pintui.ComponentSuccess},
	{label: "Running migrations", outcome: pintui.ComponentSkipped},
	{label: "Compiling assets", done: "Assets compiled with 2 warnings", outcome: pintui.ComponentWarned},
	{label: "Publishing release", done: "Release published", outcome: pintui.ComponentSuccess},
}

// advanceMsg concludes the running stage and starts the next one.
type advanceMsg struct{}

// tuiModel steps SpinnerComponents through demoStages inside a Bubble Tea program.
type tuiModel struct {
	script   []demoStage
	stages   []pintui.SpinnerComponent
	current  int
	delay    time.Duration
	done     bool
	quitting bool
}

func newTUIModel(script []demoStage, delay time.Duration) tuiModel {
	stages := make([]pintui.SpinnerComponent, len(script))
	for i, s := range script {
		stages[i] = pintui.NewStageComponent(i+1, len(script), s.label)
	}
	m := tuiModel{script: script, stages: stages, delay: delay}
	if len(stages) == 0 {
		m.done = true
		return m
	}
	m.stages[0].Start()
	return m
}

func (m tuiModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return tea.Batch(m.stages[m.current].Init(), m.advance())
}

func (m tuiModel) advance() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return advanceMsg{} })
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case advanceMsg:
		if m.done {
			return m, nil
		}
		m.conclude(m.current)
		m.current++
		if m.current >= len(m.stages) {
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Batch(m.stages[m.current].Start(), m.advance())

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for i := range m.stages {
			var cmd tea.Cmd
			m.stages[i], cmd = m.stages[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *tuiModel) conclude(i int) {
	s := m.script[i]
	switch s.outcome {
	case pintui.ComponentWarned:
		m.stages[i].Warn(s.done)
	case pintui.ComponentFailed:
		m.stages[i].Fail(s.done)
	case pintui.ComponentSkipped:
		m.stages[i].Skip()
	default:
		m.stages[i].Success(s.done)
	}
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	for _, s := range m.stages {
		sb.WriteString(s.View())
		sb.WriteString("\n")
	}
	if !m.done {
		sb.WriteString(lipgloss.NewStyle().Faint(true).Render("\nq to quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// stdoutIsTerminal reports whether a full-screen program can take over stdout.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI plays the stage demo as a Bubble Tea program. Without a terminal
// on stdout it falls back to the line-oriented stage demo.
func runTUI(ctx context.Context, p *pintui.Printer, out io.Writer, delay time.Duration) error {
	if !stdoutIsTerminal() {
		p.Dim("No terminal attached, showing line output instead")
		return demoStageProgress(ctx, p, delay)
	}

	program := tea.NewProgram(
		newTUIModel(demoStages, delay),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	return err
}
