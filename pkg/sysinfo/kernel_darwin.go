//go:build darwin

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// siKernelVersionPlatform returns the Darwin release via sysctl.
func siKernelVersionPlatform() string {
	rel, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return ""
	}
	return rel
}
