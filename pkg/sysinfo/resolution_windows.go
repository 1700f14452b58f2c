//go:build windows

package sysinfo

import "context"

func siDisplays(ctx context.Context) []Display {
	out, err := siRunCmd(ctx, "wmic", "path", "win32_videocontroller", "get",
		"CurrentHorizontalResolution,CurrentVerticalResolution,CurrentRefreshRate")
	if err != nil {
		return nil
	}
	return siParseWmicResolution(out)
}
