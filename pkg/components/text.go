// Package components provides the ANSI-aware text primitives used by every
// renderer in novafetch: byte formatting, visible width, padding, progress
// bars, and RGB gradients.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// SGR and other CSI escape sequences contribute nothing. Wide characters
// (CJK, emoji) are counted as width 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Truncate truncates s to at most maxWidth visible characters, preserving
// any ANSI escape sequences that appear before the cut point.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter pads s with spaces on both sides so that it is centered
// within width. If the padding is odd, the extra space goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// MaxWidth returns the widest visible line in lines.
func MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if n := VisibleLen(l); n > w {
			w = n
		}
	}
	return w
}

// CollapseSpaces joins the whitespace-separated fields of s with single
// spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
