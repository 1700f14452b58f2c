package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size is the terminal window in character cells, plus the pixel size of
// one cell when the platform reports it.
type Size struct {
	Cols  int
	Rows  int
	CellW int // Pixel width per cell (0 if unknown)
	CellH int // Pixel height per cell (0 if unknown)
}

// GetSize returns the window size of stdout, else stderr, else the
// COLUMNS/LINES variables, else 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		cols, rows, err := term.GetSize(f.Fd())
		if err != nil || cols <= 0 || rows <= 0 {
			continue
		}
		s := Size{Cols: cols, Rows: rows}
		s.CellW, s.CellH = cellPixels(f.Fd())
		return s
	}
	return getSizeFromEnv()
}

// getSizeFromEnv reads COLUMNS and LINES, falling back to 80x24.
func getSizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable, or
// returns fallback.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ClampWidth limits a requested image width to the window, leaving room
// for at least one column of text.
func (s Size) ClampWidth(cells int) int {
	if s.Cols > 1 && cells > s.Cols-1 {
		cells = s.Cols - 1
	}
	if cells < 1 {
		cells = 1
	}
	return cells
}
