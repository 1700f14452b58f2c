//go:build !linux

package sysinfo

import "context"

func siCountPacman(ctx context.Context) (int, bool) {
	return siCountCmd(ctx, false, "pacman", "-Qq")
}

func siCountDpkg(ctx context.Context) (int, bool) {
	return siCountCmd(ctx, false, "dpkg-query", "-f", "${binary:Package}\n", "-W")
}
