//go:build !linux && !darwin && !windows

package sysinfo

import "context"

func siGPUCandidates(ctx context.Context) []string {
	return nil
}
