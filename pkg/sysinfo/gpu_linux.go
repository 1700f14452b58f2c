//go:build linux

package sysinfo

import "context"

const drmRoot = "/sys/class/drm"

// siGPUCandidates lists display controllers via lspci, falling back to the
// DRM product name in sysfs.
func siGPUCandidates(ctx context.Context) []string {
	if out, err := siRunCmd(ctx, "lspci", "-mm"); err == nil {
		if gpus := siParseLspciMM(out); len(gpus) > 0 {
			return gpus
		}
	}
	if name := siReadDRMName(drmRoot); name != "" {
		return []string{name}
	}
	return nil
}
