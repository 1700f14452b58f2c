//go:build !linux

package sysinfo

func siRealMedium(device string) bool {
	return false
}
