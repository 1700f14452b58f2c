package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// installMarkers are probed in order for a filesystem birth time.
var installMarkers = []string{"/", "/var/log/installer", "/etc", "/var/log"}

// OSAge returns how long ago the OS was installed, or Unknown.
func OSAge(now time.Time) string {
	for _, p := range installMarkers {
		if born, ok := siBirthTime(p); ok {
			return FormatAge(now.Sub(born))
		}
	}
	return Unknown
}

// FormatAge renders d as "Y years, M months, D days" using 365-day years and
// 30-day months. Zero parts are omitted.
func FormatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int64(d / (24 * time.Hour))
	years := days / 365
	rem := days % 365
	months := rem / 30
	days = rem % 30

	var parts []string
	for _, p := range []struct {
		n          int64
		one, other string
	}{
		{years, "year", "years"},
		{months, "month", "months"},
		{days, "day", "days"},
	} {
		switch {
		case p.n == 1:
			parts = append(parts, "1 "+p.one)
		case p.n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.other))
		}
	}
	if len(parts) == 0 {
		return "Less than a day"
	}
	return strings.Join(parts, ", ")
}
