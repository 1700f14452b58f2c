//go:build unix

package terminal

import "golang.org/x/sys/unix"

// cellPixels derives the pixel size of one cell from TIOCGWINSZ. Zero
// means the terminal did not report pixel dimensions.
func cellPixels(fd uintptr) (w, h int) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row)
}
