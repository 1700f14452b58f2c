package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// pkgSource counts the packages of one manager. ok is false when the
// manager is not present.
type pkgSource struct {
	name  string
	count func(ctx context.Context) (n int, ok bool)
}

var pkgSources = []pkgSource{
	{"pacman", siCountPacman},
	{"dpkg", siCountDpkg},
	{"rpm", func(ctx context.Context) (int, bool) { return siCountCmd(ctx, false, "rpm", "-qa") }},
	{"flatpak", func(ctx context.Context) (int, bool) { return siCountCmd(ctx, true, "flatpak", "list") }},
	{"snap", func(ctx context.Context) (int, bool) { return siCountCmd(ctx, true, "snap", "list") }},
}

// Packages returns "N (pacman), M (flatpak), ..." for every manager that
// reports, or Dash when none does.
func Packages(ctx context.Context) string {
	var parts []string
	for _, src := range pkgSources {
		if n, ok := src.count(ctx); ok {
			parts = append(parts, fmt.Sprintf("%d (%s)", n, src.name))
		}
	}
	if len(parts) == 0 {
		return Dash
	}
	return strings.Join(parts, ", ")
}

// siCountCmd counts the non-blank output lines of a command, optionally
// skipping a header line.
func siCountCmd(ctx context.Context, skipHeader bool, name string, args ...string) (int, bool) {
	out, err := siRunCmd(ctx, name, args...)
	if err != nil {
		return 0, false
	}
	return siCountLines(out, skipHeader), true
}

func siCountLines(out string, skipHeader bool) int {
	n := len(siNonEmptyLines(out))
	if skipHeader && n > 0 {
		n--
	}
	return n
}

// siCountDpkgStatus counts "Package:" stanzas in a dpkg status database.
func siCountDpkgStatus(r io.Reader) int {
	n := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), "Package:") {
			n++
		}
	}
	return n
}

// siCountDirs counts the subdirectories of dir.
func siCountDirs(dir string) (int, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, false
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			n++
		}
	}
	return n, true
}
