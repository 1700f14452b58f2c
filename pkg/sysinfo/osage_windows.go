//go:build windows

package sysinfo

import (
	"os"
	"syscall"
	"time"
)

func siBirthTime(path string) (time.Time, bool) {
	if path == "/" {
		path = os.Getenv("SystemDrive") + `\`
	}
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	attr, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()), true
}
