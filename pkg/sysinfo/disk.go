package sysinfo

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// Mount is one mounted filesystem with its usage.
type Mount struct {
	Path   string
	Device string
	FSType string
	Total  uint64
	Used   uint64
}

// Label returns the display label "Disk (path, fstype)".
func (m Mount) Label() string {
	if m.FSType == "" {
		return fmt.Sprintf("Disk (%s)", m.Path)
	}
	return fmt.Sprintf("Disk (%s, %s)", m.Path, m.FSType)
}

// Mounts lists physical partitions with their usage. Each mount point is
// reported once; partitions whose usage cannot be read are skipped.
func Mounts(ctx context.Context) ([]Mount, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil && len(parts) == 0 {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	seen := make(map[string]bool)
	var mounts []Mount
	for _, p := range parts {
		if seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true

		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		used := usage.Total - min(usage.Free, usage.Total)
		mounts = append(mounts, Mount{
			Path:   p.Mountpoint,
			Device: p.Device,
			FSType: p.Fstype,
			Total:  usage.Total,
			Used:   used,
		})
	}
	return mounts, nil
}

// RelevantMounts filters out virtual, temporary and loop-image mounts and
// orders the rest: the root mount (or C:) first, then by label.
func RelevantMounts(ms []Mount) []Mount {
	var out []Mount
	for _, m := range ms {
		if IsRelevantMount(m, siRealMedium) {
			out = append(out, m)
		}
	}
	SortMounts(out)
	return out
}

// IsRelevantMount reports whether m should be shown. realMedium reports
// whether a device is backed by an SSD or HDD.
func IsRelevantMount(m Mount, realMedium func(device string) bool) bool {
	path := m.Path
	if strings.Contains(path, "snap") {
		return false
	}
	lower := strings.ToLower(path)
	switch {
	case lower == "/tmp", lower == "/run", lower == "/dev/shm":
		return false
	case strings.HasPrefix(lower, "/sys"), strings.HasPrefix(lower, "/proc"):
		return false
	case strings.Contains(lower, "/run/"), strings.Contains(lower, "overlay"):
		return false
	}
	if strings.Contains(strings.ToLower(m.Device), "loop") {
		return realMedium != nil && realMedium(m.Device)
	}
	return true
}

// SortMounts orders root-like mounts first, ties and the rest by label.
func SortMounts(ms []Mount) {
	sort.SliceStable(ms, func(i, j int) bool {
		ri, rj := siRootLike(ms[i].Path), siRootLike(ms[j].Path)
		if ri != rj {
			return ri
		}
		return ms[i].Label() < ms[j].Label()
	})
}

func siRootLike(path string) bool {
	p := strings.TrimRight(path, `\`)
	return p == "/" || strings.EqualFold(p, "C:")
}

// siBlockName returns the kernel block device name for a device path.
func siBlockName(device string) string {
	return filepath.Base(device)
}
