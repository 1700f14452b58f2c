//go:build !linux && !freebsd && !openbsd && !netbsd

package sysinfo

import "context"

// Media is not available without a session bus.
func Media(ctx context.Context) (string, error) {
	return "", ErrNoData
}
