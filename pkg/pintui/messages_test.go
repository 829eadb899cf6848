package pintui_test

import (
	"bytes"
	"testing"

	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/rileyhilliard/pintui/pkg/pintui/pintuitest"
	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *pintui.Printer)
		want  string
	}{
		{"info", func(p *pintui.Printer) { p.Info("Processing 42 files...") }, "ℹ Processing 42 files...\n"},
		{"infof", func(p *pintui.Printer) { p.Infof("Processing %d files...", 42) }, "ℹ Processing 42 files...\n"},
		{"success", func(p *pintui.Printer) { p.Success("All tests passed") }, "✓ All tests passed\n"},
		{"successf", func(p *pintui.Printer) { p.Successf("%d passed", 3) }, "✓ 3 passed\n"},
		{"warn", func(p *pintui.Printer) { p.Warn("Using defaults") }, "⚠ Using defaults\n"},
		{"warnf", func(p *pintui.Printer) { p.Warnf("%s missing", "config") }, "⚠ config missing\n"},
		{"error", func(p *pintui.Printer) { p.Error("Connection refused") }, "✗ Connection refused\n"},
		{"errorf", func(p *pintui.Printer) { p.Errorf("exit %d", 2) }, "✗ exit 2\n"},
		{"dim", func(p *pintui.Printer) { p.Dim("Output: ./bin/app") }, "  Output: ./bin/app\n"},
		{"dimf", func(p *pintui.Printer) { p.Dimf("Size: %s", "4.2 MB") }, "  Size: 4.2 MB\n"},
		{"empty message", func(p *pintui.Printer) { p.Info("") }, "ℹ \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := pintuitest.NewPrinter()
			tt.print(p)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestMessages_Color(t *testing.T) {
	var buf bytes.Buffer
	p := pintui.NewPrinter(&buf, pintui.WithColor(true))

	p.Success("Done")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "Done")
	assert.True(t, p.ColorEnabled())
}

func TestMessages_BufferDefaultsToPlain(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	var buf bytes.Buffer
	p := pintui.NewPrinter(&buf)

	p.Warn("careful")

	assert.Equal(t, "⚠ careful\n", buf.String())
	assert.False(t, p.Animated())
}

func TestPackageLevelMessages(t *testing.T) {
	original := pintui.Default()
	defer pintui.SetDefault(original)

	p, buf := pintuitest.NewPrinter()
	pintui.SetDefault(p)

	pintui.Info("a")
	pintui.Successf("b%d", 1)
	pintui.Warn("c")
	pintui.Error("d")
	pintui.Dim("e")

	assert.Equal(t, []string{"ℹ a", "✓ b1", "⚠ c", "✗ d", "  e"}, buf.Lines())
}
