//go:build linux

package sysinfo

import "context"

func siDisplays(ctx context.Context) []Display {
	out, err := siRunCmd(ctx, "xrandr", "--current")
	if err != nil {
		return nil
	}
	return siParseXrandr(out)
}
