package pintui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is the braille frame set shared by SpinnerHandle and
// SpinnerComponent.
var SpinnerFrames = spinner.Spinner{
	Frames: spinner.MiniDot.Frames,
	FPS:    DefaultInterval,
}

// ComponentState is the lifecycle of a SpinnerComponent.
type ComponentState int

const (
	ComponentPending ComponentState = iota
	ComponentRunning
	ComponentSuccess
	ComponentFailed
	ComponentWarned
	ComponentSkipped
)

// SpinnerComponent is a Bubble Tea model that renders like a stage spinner,
// for embedding progress into full-screen programs.
type SpinnerComponent struct {
	spinner   spinner.Model
	Label     string
	Prefix    string
	State     ComponentState
	StartTime time.Time
}

// NewSpinnerComponent creates a pending component with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   ComponentPending,
	}
}

// NewStageComponent creates a component prefixed with "[current/total] ".
func NewStageComponent(current, total int, label string) SpinnerComponent {
	c := NewSpinnerComponent(label)
	c.Prefix = stageMarker(current, total) + " "
	return c
}

// Init returns the initial tick when the component is already running.
func (s SpinnerComponent) Init() tea.Cmd {
	if s.State != ComponentRunning {
		return nil
	}
	return s.spinner.Tick
}

// Update advances the animation while running.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != ComponentRunning {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the component in its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case ComponentRunning:
		return s.spinner.View() + " " + s.Prefix + s.Label
	case ComponentSuccess:
		return s.viewFinal(SymbolOK, ColorSuccess)
	case ComponentFailed:
		return s.viewFinal(SymbolFail, ColorError)
	case ComponentWarned:
		return s.viewFinal(SymbolWarn, ColorWarning)
	case ComponentSkipped:
		return "  " + lipgloss.NewStyle().Faint(true).Render(SymbolSkip) + " " + s.Prefix + s.Label + " (skipped)"
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolSkip) + " " + s.Prefix + s.Label
	}
}

func (s SpinnerComponent) viewFinal(symbol string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(symbol) + " " + s.Prefix + s.Label
}

// Start moves the component to running and returns the first tick.
func (s *SpinnerComponent) Start() tea.Cmd {
	s.State = ComponentRunning
	s.StartTime = time.Now()
	return s.spinner.Tick
}

// Success concludes the component, optionally replacing its label.
func (s *SpinnerComponent) Success(label string) { s.conclude(ComponentSuccess, label) }

// Fail concludes the component as failed.
func (s *SpinnerComponent) Fail(label string) { s.conclude(ComponentFailed, label) }

// Warn concludes the component with a warning.
func (s *SpinnerComponent) Warn(label string) { s.conclude(ComponentWarned, label) }

// Skip marks the component as skipped.
func (s *SpinnerComponent) Skip() { s.conclude(ComponentSkipped, "") }

func (s *SpinnerComponent) conclude(state ComponentState, label string) {
	if s.State != ComponentPending && s.State != ComponentRunning {
		return
	}
	s.State = state
	if label != "" {
		s.Label = label
	}
}

// Elapsed returns the duration since Start.
func (s SpinnerComponent) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime)
}
