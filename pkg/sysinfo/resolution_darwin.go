//go:build darwin

package sysinfo

import "context"

func siDisplays(ctx context.Context) []Display {
	out, err := siRunCmd(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return nil
	}
	return siParseSystemProfiler(out)
}
