//go:build windows

package sysinfo

import "context"

// siGPUCandidates lists video controllers through WMI.
func siGPUCandidates(ctx context.Context) []string {
	out, err := siRunCmd(ctx, "wmic", "path", "win32_videocontroller", "get", "name")
	if err != nil {
		return nil
	}
	return siParseWmicNames(out)
}
