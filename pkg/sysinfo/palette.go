package sysinfo

import (
	"fmt"
	"strings"
)

const paletteBlock = "██ "

// Palette returns two rows of colour blocks: the eight standard ANSI colours
// and the eight bright ones. With noColor the rows are plain blocks.
func Palette(noColor bool) []string {
	if noColor {
		row := strings.TrimRight(strings.Repeat(paletteBlock, 8), " ")
		return []string{row, row}
	}
	return []string{siPaletteRow(30), siPaletteRow(90)}
}

func siPaletteRow(base int) string {
	var b strings.Builder
	for i := base; i < base+8; i++ {
		fmt.Fprintf(&b, "\x1b[%dm%s\x1b[0m", i, paletteBlock)
	}
	return b.String()
}
