package sysinfo

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Kernel returns the long kernel version, e.g. "Linux 6.8.0-45-generic".
// It always returns a non-empty string.
func Kernel(ctx context.Context) string {
	ver, err := host.KernelVersionWithContext(ctx)
	if err != nil || strings.TrimSpace(ver) == "" {
		ver = siParseKernelVersion(siKernelVersionPlatform())
	}
	ver = strings.TrimSpace(ver)
	if ver == "" {
		return "unknown"
	}
	name := siKernelName(runtime.GOOS)
	if name == "" || strings.HasPrefix(ver, name) {
		return ver
	}
	return name + " " + ver
}

// siKernelName maps GOOS to the kernel's own name.
func siKernelName(goos string) string {
	switch goos {
	case "linux", "android":
		return "Linux"
	case "darwin", "ios":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return ""
	}
}

// siParseKernelVersion cleans a raw kernel version string by trimming
// whitespace and stripping common prefixes like "Linux version ".
func siParseKernelVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// /proc/version on Linux returns something like:
	// "Linux version 6.1.0-27-amd64 (debian-kernel@...) (gcc ...) ..."
	if strings.HasPrefix(s, "Linux version ") {
		s = strings.TrimPrefix(s, "Linux version ")
		if idx := strings.IndexByte(s, ' '); idx >= 0 {
			s = s[:idx]
		}
	}

	return s
}
