// Package banner writes the final report: the logo column and the info
// column side by side, or the info column alone when the logo was drawn
// as an image above it.
package banner

import (
	"bufio"
	"io"
	"strings"

	"github.com/novafetch/novafetch/pkg/components"
)

// DefaultMargin is the gap in cells between the logo and info columns.
const DefaultMargin = 4

// Compose writes logo and info side by side. Every row starts with the
// logo line padded to the widest logo line (blanks once the logo runs
// out), then margin spaces, then the info line if any. The row count is
// the longer of the two columns.
func Compose(w io.Writer, logo, info []string, margin int) error {
	if margin < 0 {
		margin = DefaultMargin
	}
	width := components.MaxWidth(logo)
	gap := strings.Repeat(" ", margin)
	blank := strings.Repeat(" ", width)

	bw := bufio.NewWriter(w)
	for i := 0; i < max(len(logo), len(info)); i++ {
		left := blank
		if i < len(logo) {
			left = components.PadRight(logo[i], width)
		}
		right := ""
		if i < len(info) {
			right = info[i]
		}
		bw.WriteString(left)
		bw.WriteString(gap)
		bw.WriteString(right)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteInfo writes one info line per row.
func WriteInfo(w io.Writer, info []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range info {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
