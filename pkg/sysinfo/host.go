package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// osReleasePaths are tried in order for the os-release(5) file.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// UserHost returns "user@host". An unknown host name becomes "unknown".
func UserHost() string {
	return siUserName() + "@" + siHostName()
}

func siUserName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user.
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "unknown"
}

func siHostName() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "unknown"
	}
	return h
}

// OSName returns the long OS name with the CPU architecture appended unless
// the name already mentions it.
func OSName(ctx context.Context) string {
	name := siOSReleaseField("PRETTY_NAME")
	if name == "" {
		name = siPlatformName(ctx)
	}
	if name == "" {
		return "unknown"
	}
	return siAppendArch(name, host.KernelArch)
}

func siAppendArch(name string, arch func() (string, error)) string {
	a, err := arch()
	if err != nil || a == "" {
		return name
	}
	if strings.Contains(strings.ToLower(name), strings.ToLower(a)) {
		return name
	}
	return name + " " + a
}

// siPlatformName builds "Name Version" from gopsutil platform information.
func siPlatformName(ctx context.Context) string {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil || platform == "" {
		return ""
	}
	switch strings.ToLower(platform) {
	case "darwin", "macos":
		platform = "macOS"
	case "freebsd":
		platform = "FreeBSD"
	}
	if version == "" || strings.Contains(platform, version) {
		return platform
	}
	return platform + " " + version
}

// DistroID returns the distribution identifier used to pick a logo, or ""
// when it cannot be determined.
func DistroID(ctx context.Context) string {
	if id := siOSReleaseField("ID"); id != "" {
		return id
	}
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "windows":
		if strings.Contains(siPlatformName(ctx), "11") {
			return "windows11"
		}
		return "windows10"
	}
	platform, _, _, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return ""
	}
	return strings.ToLower(platform)
}

// siOSReleaseField returns key from the first readable os-release file.
func siOSReleaseField(key string) string {
	for _, p := range osReleasePaths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return siParseOSRelease(string(data))[key]
	}
	return ""
}

// siParseOSRelease parses KEY=value lines, unquoting values.
func siParseOSRelease(data string) map[string]string {
	fields := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		v = siUnquote(v, '"')
		v = siUnquote(v, '\'')
		fields[strings.TrimSpace(k)] = v
	}
	return fields
}

// Uptime returns the time since boot.
func Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}

// FormatUptime renders d as "Xd Yh Zm". Leading zero units are dropped;
// minutes are always shown.
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Minute)
	days := total / (24 * 60)
	hours := (total / 60) % 24
	mins := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// DesktopEnv returns XDG_CURRENT_DESKTOP, else DESKTOP_SESSION, else N/A.
func DesktopEnv() string {
	if v := os.Getenv("XDG_CURRENT_DESKTOP"); v != "" {
		return v
	}
	if v := os.Getenv("DESKTOP_SESSION"); v != "" {
		return v
	}
	return NotAvailable
}
