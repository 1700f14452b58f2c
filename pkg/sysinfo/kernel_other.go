//go:build !linux && !darwin

package sysinfo

// siKernelVersionPlatform has no fallback source on this platform.
func siKernelVersionPlatform() string {
	return ""
}
