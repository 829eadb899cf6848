package pintui

import (
	"fmt"
	"sync"
)

// StageProgress numbers a sequence of stages. Each Next or Skip advances
// the counter by one; advancing past the total is allowed.
//
//	stages := p.NewStageProgress(3)
//	s := stages.Next("Downloading")
//	s.Success("Downloaded")
//	stages.Skip("Installing")
type StageProgress struct {
	p       *Printer
	mu      sync.Mutex
	current int
	total   int
}

// NewStageProgress creates a stage counter for total stages.
func (p *Printer) NewStageProgress(total int) *StageProgress {
	if total < 0 {
		total = 0
	}
	return &StageProgress{p: p, total: total}
}

// Next advances to the next stage and returns a spinner prefixed with
// "[current/total] ".
func (sp *StageProgress) Next(msg string) *SpinnerHandle {
	return sp.p.newSpinner(sp.advance()+" ", msg)
}

// Skip advances past a stage without running it:
//
//	○ [2/3] Installing (skipped)
func (sp *StageProgress) Skip(msg string) {
	marker := sp.advance()
	sp.p.write(fmt.Sprintf("  %s %s %s %s\n", sp.p.IconSkip(), marker, msg, sp.p.st().faint.Render("(skipped)")))
}

func (sp *StageProgress) advance() string {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.current++
	return stageMarker(sp.current, sp.total)
}

func stageMarker(current, total int) string {
	return fmt.Sprintf("[%d/%d]", current, total)
}

// Current returns the number of stages issued so far.
func (sp *StageProgress) Current() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.current
}

// Total returns the number of stages.
func (sp *StageProgress) Total() int {
	return sp.total
}

// IsComplete reports whether every stage has been issued.
func (sp *StageProgress) IsComplete() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.current >= sp.total
}

// NewStageProgress creates a stage counter on the default printer.
func NewStageProgress(total int) *StageProgress {
	return Default().NewStageProgress(total)
}
