//go:build darwin

package sysinfo

import "context"

// siGPUCandidates reads chipset models from system_profiler.
func siGPUCandidates(ctx context.Context) []string {
	out, err := siRunCmd(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return nil
	}
	return siParseChipsetModels(out)
}
