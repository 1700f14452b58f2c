// Package sysinfo provides the per-fact host probes behind the fetch report:
// identity, OS and kernel, uptime, GPU naming, temperatures, disks,
// packages, terminal, display resolution, install age, GTK theme, media and
// network address. Platform differences live in build-tagged files; every
// probe returns an error or a zero value instead of panicking so the caller
// can substitute its failure sentinel.
package sysinfo

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Failure sentinels shared by the probes.
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
	Dash         = "—"
)

// ErrNoData is returned by probes that ran but found nothing to report.
var ErrNoData = errors.New("sysinfo: no data")

// siRunCmd runs name with args and returns its complete stdout. A missing
// executable is reported like any other failure.
func siRunCmd(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// siNonEmptyLines splits s into trimmed, non-blank lines.
func siNonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
