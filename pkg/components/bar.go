package components

import (
	"math"
	"strings"
)

// BarStyle configures the glyphs of a usage bar.
type BarStyle struct {
	Name      string
	Filled    string
	Empty     string
	Bracketed bool
}

// Built-in bar styles. Exactly one is active per run.
var (
	BarBlocks  = BarStyle{Name: "blocks", Filled: "█", Empty: "░", Bracketed: true}
	BarDots    = BarStyle{Name: "dots", Filled: "●", Empty: "○"}
	BarClassic = BarStyle{Name: "classic", Filled: "|", Empty: ".", Bracketed: true}
)

// BarStyleByName resolves a configured style name. Unknown names fall back
// to BarBlocks.
func BarStyleByName(name string) BarStyle {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dots":
		return BarDots
	case "classic":
		return BarClassic
	default:
		return BarBlocks
	}
}

// Bar renders used/total as width cells of filled and empty glyphs.
// filled = round(used/total*width), clamped to [0, width]. A zero total or
// non-positive width yields "". Bracketed styles add "[" and "]" around the
// cells.
func Bar(used, total uint64, width int, style BarStyle) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(used) / float64(total) * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	var b strings.Builder
	if style.Bracketed {
		b.WriteByte('[')
	}
	b.WriteString(strings.Repeat(style.Filled, filled))
	b.WriteString(strings.Repeat(style.Empty, width-filled))
	if style.Bracketed {
		b.WriteByte(']')
	}
	return b.String()
}

// PercentBar is Bar for a 0-100 percentage.
func PercentBar(pct float64, width int, style BarStyle) string {
	if pct < 0 {
		pct = 0
	}
	return Bar(uint64(math.Round(pct*100)), 10000, width, style)
}
