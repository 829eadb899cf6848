package pintui_test

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/rileyhilliard/pintui/pkg/pintui/pintuitest"
	"github.com/stretchr/testify/assert"
)

func TestBar_Finish(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(10))

	bar := p.Bar(10, "Downloading")
	bar.Add(3)
	bar.Add64(2)
	assert.Equal(t, int64(5), bar.Current())
	assert.Equal(t, int64(10), bar.Total())
	assert.Empty(t, buf.String(), "non-animated bars draw only when finished")

	bar.Finish()

	assert.Equal(t, "Downloading  50% [━━━━━─────] (5/10)\n", buf.String())
}

func TestBar_TerminalIsIdempotent(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(10))

	bar := p.Bar(4, "Copy")
	bar.Set(4)
	bar.Finish()
	bar.Add(1)
	bar.Set64(1)
	bar.Finish()
	bar.Clear()
	bar.Success("ignored")

	assert.Equal(t, int64(4), bar.Current())
	assert.Equal(t, []string{"Copy 100% [━━━━━━━━━━] (4/4)"}, buf.Lines())
}

func TestBar_NotClamped(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(4))

	bar := p.Bar(10, "Over")
	bar.Set(25)
	assert.Equal(t, int64(25), bar.Current())
	bar.Finish()

	assert.Equal(t, "Over 100% [━━━━] (25/10)\n", buf.String())
}

func TestBar_SuccessAndError(t *testing.T) {
	tests := []struct {
		name string
		end  func(b *pintui.BarHandle)
		want []string
	}{
		{
			name: "success",
			end:  func(b *pintui.BarHandle) { b.Success("Downloaded") },
			want: []string{"  0% [────] (0/2)", "✓ Downloaded"},
		},
		{
			name: "error",
			end:  func(b *pintui.BarHandle) { b.Error("Failed") },
			want: []string{"  0% [────] (0/2)", "✗ Failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(4))
			tt.end(p.Bar(2, ""))
			assert.Equal(t, tt.want, buf.Lines())
		})
	}
}

func TestBar_ZeroTotal(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(4))

	p.Bar(0, "Nothing").Finish()

	assert.Equal(t, "Nothing 100% [━━━━] (0/0)\n", buf.String())
}

func TestBar_ClearWithoutDrawing(t *testing.T) {
	p, buf := pintuitest.NewPrinter()

	bar := p.Bar(10, "x")
	bar.Add(1)
	bar.Clear()
	bar.Finish()

	assert.Empty(t, buf.String())
}

func TestBar_Animated(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(4), pintui.WithAnimation(true))

	bar := p.Bar(4, "Go")
	bar.Add(2)
	bar.Finish()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\rGo   0% [────] (0/4)"))
	assert.Contains(t, out, "\rGo  50% [━━──] (2/4)")
	assert.True(t, strings.HasSuffix(out, "\rGo  50% [━━──] (2/4)\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestBar_AnimatedClear(t *testing.T) {
	p, buf := pintuitest.NewPrinter(pintui.WithBarWidth(4), pintui.WithAnimation(true))

	bar := p.Bar(4, "Go")
	bar.Clear()

	line := "Go   0% [────] (0/4)"
	assert.Equal(t, "\r"+line+"\r"+strings.Repeat(" ", 20)+"\r", buf.String())
}
