//go:build linux

package sysinfo

import (
	"context"
	"os"
)

const (
	pacmanLocalDir = "/var/lib/pacman/local"
	dpkgStatusFile = "/var/lib/dpkg/status"
)

func siCountPacman(ctx context.Context) (int, bool) {
	return siCountDirs(pacmanLocalDir)
}

func siCountDpkg(ctx context.Context) (int, bool) {
	f, err := os.Open(dpkgStatusFile)
	if err != nil {
		return 0, false
	}
	defer f.Close()
	return siCountDpkgStatus(f), true
}
