//go:build !linux && !darwin && !windows

package sysinfo

import "context"

// siDisplays falls back to xrandr on the BSDs and other X11 systems.
func siDisplays(ctx context.Context) []Display {
	out, err := siRunCmd(ctx, "xrandr", "--current")
	if err != nil {
		return nil
	}
	return siParseXrandr(out)
}
