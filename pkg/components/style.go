package components

import (
	"fmt"
	"math"
	"strings"
)

// RGB is a 24-bit foreground color.
type RGB [3]uint8

// FgRGB produces an ANSI true-color (24-bit) foreground escape sequence.
func FgRGB(c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c[0], c[1], c[2])
}

// Fg256 produces an ANSI 256-color foreground escape sequence.
func Fg256(n uint8) string {
	return fmt.Sprintf("\x1b[38;5;%dm", n)
}

// Reset returns the ANSI reset sequence that clears all styling.
func Reset() string {
	return "\x1b[0m"
}

// Solid wraps text in a single foreground color followed by a reset.
func Solid(text string, c RGB) string {
	return FgRGB(c) + text + Reset()
}

// Gradient colors each codepoint of text with a color linearly interpolated
// from start to end. The i-th of n codepoints uses t = i/(n-1), or t = 1
// when there is only one. A single reset closes the sequence.
func Gradient(text string, start, end RGB) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	n := len(runes)

	var b strings.Builder
	b.Grow(n*20 + 4)
	for i, r := range runes {
		t := 1.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		b.WriteString(FgRGB(Lerp(start, end, t)))
		b.WriteRune(r)
	}
	b.WriteString(Reset())
	return b.String()
}

// Lerp interpolates each channel between a and b at t, rounding and
// clamping to [0, 255].
func Lerp(a, b RGB, t float64) RGB {
	var out RGB
	for i := range out {
		v := (1-t)*float64(a[i]) + t*float64(b[i])
		out[i] = uint8(math.Max(0, math.Min(255, math.Round(v))))
	}
	return out
}
