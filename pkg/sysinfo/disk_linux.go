//go:build linux

package sysinfo

import "os"

// siRealMedium reports whether the block device (or the disk holding the
// partition) is backed by hardware. Loop devices have no device link.
func siRealMedium(device string) bool {
	name := siBlockName(device)
	for _, p := range []string{
		"/sys/class/block/" + name + "/device",
		"/sys/class/block/" + name + "/../device",
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
