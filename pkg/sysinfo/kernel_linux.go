//go:build linux

package sysinfo

import (
	"os"
)

// siKernelVersionPlatform reads the release from procfs, falling back to
// the banner in /proc/version.
func siKernelVersionPlatform() string {
	for _, p := range []string{"/proc/sys/kernel/osrelease", "/proc/version"} {
		if data, err := os.ReadFile(p); err == nil && len(data) > 0 {
			return string(data)
		}
	}
	return ""
}
