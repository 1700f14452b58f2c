//go:build !linux && !darwin && !windows

package sysinfo

import "time"

func siBirthTime(path string) (time.Time, bool) {
	return time.Time{}, false
}
