package image

import "math"

// imgDefaultCellW and imgDefaultCellH are the cell pixel dimensions
// assumed when the terminal does not report them.
const (
	imgDefaultCellW = 8
	imgDefaultCellH = 16
)

// imgCellGrid returns the cell grid an imgW x imgH image occupies when
// drawn cols cells wide, preserving the aspect ratio.
func imgCellGrid(imgW, imgH, cellW, cellH, cols int) (int, int) {
	if cols <= 0 {
		cols = 1
	}
	if imgW <= 0 || imgH <= 0 {
		return cols, 1
	}
	if cellW <= 0 {
		cellW = imgDefaultCellW
	}
	if cellH <= 0 {
		cellH = imgDefaultCellH
	}
	aspect := float64(imgW) / float64(imgH)
	rows := int(math.Round(float64(cols*cellW) / aspect / float64(cellH)))
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
