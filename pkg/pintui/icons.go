package pintui

// Canonical icons. Use the raw constants for custom coloring or the Icon
// accessors on Printer for the default colors.
const (
	SymbolOK            = "✓"
	SymbolFail          = "✗"
	SymbolWarn          = "⚠"
	SymbolInfo          = "ℹ"
	SymbolArrow         = "→"
	SymbolSkip          = "○"
	SymbolPending       = "●"
	SymbolStar          = "★"
	SymbolDiamondFilled = "◆"
	SymbolDiamondEmpty  = "◇"
	SymbolPlay          = "▶"
	SymbolRefresh       = "↻"
	SymbolAdd           = "+"
	SymbolRemove        = "-"
	SymbolChange        = "~"
)

// Rule is the box-drawing character used by headers and dividers.
const Rule = "─"

// IconOK returns a green ✓.
func (p *Printer) IconOK() string { return p.st().success.Render(SymbolOK) }

// IconFail returns a red ✗.
func (p *Printer) IconFail() string { return p.st().err.Render(SymbolFail) }

// IconWarn returns a yellow ⚠.
func (p *Printer) IconWarn() string { return p.st().warn.Render(SymbolWarn) }

// IconInfo returns a blue ℹ.
func (p *Printer) IconInfo() string { return p.st().info.Render(SymbolInfo) }

// IconArrow returns a cyan →.
func (p *Printer) IconArrow() string { return p.st().accent.Render(SymbolArrow) }

// IconSkip returns a faint ○.
func (p *Printer) IconSkip() string { return p.st().faint.Render(SymbolSkip) }

// IconPending returns a yellow ●.
func (p *Printer) IconPending() string { return p.st().warn.Render(SymbolPending) }

// IconStar returns a green ★.
func (p *Printer) IconStar() string { return p.st().success.Render(SymbolStar) }

// IconAdd returns a green +.
func (p *Printer) IconAdd() string { return p.st().success.Render(SymbolAdd) }

// IconRemove returns a red -.
func (p *Printer) IconRemove() string { return p.st().err.Render(SymbolRemove) }

// IconChange returns a yellow ~.
func (p *Printer) IconChange() string { return p.st().warn.Render(SymbolChange) }

// Token describes one icon of the design system and its default color.
type Token struct {
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
	Color  string `yaml:"color,omitempty" json:"color,omitempty"`
}

// IconTokens lists every icon with its default color name, in display order.
// Icons without a default color have an empty Color.
func IconTokens() []Token {
	return []Token{
		{"ok", SymbolOK, "green"},
		{"fail", SymbolFail, "red"},
		{"warn", SymbolWarn, "yellow"},
		{"info", SymbolInfo, "blue"},
		{"arrow", SymbolArrow, "cyan"},
		{"skip", SymbolSkip, "faint"},
		{"pending", SymbolPending, "yellow"},
		{"star", SymbolStar, "green"},
		{"diamond_filled", SymbolDiamondFilled, ""},
		{"diamond_empty", SymbolDiamondEmpty, ""},
		{"play", SymbolPlay, ""},
		{"refresh", SymbolRefresh, ""},
		{"add", SymbolAdd, "green"},
		{"remove", SymbolRemove, "red"},
		{"change", SymbolChange, "yellow"},
	}
}

// ColorTokens maps palette names to their ANSI codes.
func ColorTokens() []Token {
	return []Token{
		{"success", "", string(ColorSuccess)},
		{"error", "", string(ColorError)},
		{"warning", "", string(ColorWarning)},
		{"info", "", string(ColorInfo)},
		{"accent", "", string(ColorAccent)},
		{"muted", "", string(ColorMuted)},
	}
}
