package collectors

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/novafetch/novafetch/pkg/collectors/sysmetrics"
	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/shell"
	"github.com/novafetch/novafetch/pkg/sysinfo"
)

// barWidth is the cell count of every usage bar.
const barWidth = 10

// errNoSnapshot is returned by snapshot readers when the metric they need
// is unavailable.
var errNoSnapshot = fmt.Errorf("snapshot unavailable: %w", sysinfo.ErrNoData)

// Builtin returns a registry holding every built-in module.
func Builtin() *Registry {
	return NewRegistry().MustRegister(
		NewFunc("user_host", func(_ context.Context, _ *Env) ([]Row, error) {
			return single("user_host", "", sysinfo.UserHost()), nil
		}),
		NewFunc("os", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("os", "OS", sysinfo.OSName(ctx)), nil
		}),
		NewFunc("kernel", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("kernel", "Kernel", sysinfo.Kernel(ctx)), nil
		}),
		NewFunc("uptime", collectUptime),
		NewFunc("shell", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("shell", "Shell", shell.Detect(ctx).String()), nil
		}),
		NewFunc("de", func(_ context.Context, _ *Env) ([]Row, error) {
			return single("de", "DE/WM", sysinfo.DesktopEnv()), nil
		}),
		NewFunc("cpu", collectCPU).WithSnapshot(),
		NewFunc("gpu", collectGPU),
		NewFunc("memory", collectMemory).WithSnapshot(),
		NewDiskCollector(sysinfo.Mounts),
		NewFunc("swap", collectSwap).WithSnapshot(),
		NewFunc("packages", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("packages", "Packages", sysinfo.Packages(ctx)), nil
		}),
		NewFunc("terminal", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("terminal", "Terminal", sysinfo.TerminalName(ctx)), nil
		}),
		NewFunc("terminal_font", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("terminal_font", "Terminal Font", sysinfo.TerminalFont(ctx)), nil
		}),
		NewFunc("resolution", func(ctx context.Context, _ *Env) ([]Row, error) {
			return single("resolution", "Resolution", sysinfo.Resolution(ctx)), nil
		}),
		NewFunc("os_age", func(_ context.Context, _ *Env) ([]Row, error) {
			return single("os_age", "OS Age", sysinfo.OSAge(time.Now())), nil
		}),
		NewFunc("theme", collectTheme),
		NewFunc("media", collectMedia),
		NewFunc("local_ip", collectLocalIP),
		NewFunc("palette", func(_ context.Context, env *Env) ([]Row, error) {
			var rows []Row
			for _, line := range sysinfo.Palette(env.NoColor) {
				rows = append(rows, Row{Key: "palette", Value: line})
			}
			return rows, nil
		}),
		NewFunc("battery", collectBattery),
	)
}

func collectUptime(ctx context.Context, _ *Env) ([]Row, error) {
	d, err := sysinfo.Uptime(ctx)
	if err != nil {
		return nil, err
	}
	return single("uptime", "Uptime", sysinfo.FormatUptime(d)), nil
}

func collectCPU(ctx context.Context, env *Env) ([]Row, error) {
	if env.Snapshot == nil || !env.Snapshot.CPU.Valid {
		return single("cpu", "CPU", sysinfo.NotAvailable), nil
	}
	temp, ok := sysinfo.CPUTemperature(env.Readings(ctx))
	value := FormatCPU(env.Snapshot.CPU, temp, ok, env.General().ShowCPUBar, env.BarStyle())
	return single("cpu", "CPU", value), nil
}

func collectGPU(ctx context.Context, env *Env) ([]Row, error) {
	readings := env.Readings(ctx)
	value := sysinfo.GPUName(ctx, readings)
	if t, ok := sysinfo.GPUTemperature(readings); ok {
		value += " (" + sysinfo.FormatTemp(t) + ")"
	}
	return single("gpu", "GPU", value), nil
}

func collectMemory(_ context.Context, env *Env) ([]Row, error) {
	if env.Snapshot == nil || !env.Snapshot.Memory.Valid {
		return nil, errNoSnapshot
	}
	m := env.Snapshot.Memory
	value := FormatMemory(m.Used, m.Total, env.Units(), env.General().ShowMemoryBar, env.BarStyle())
	return single("memory", "Memory", value), nil
}

func collectSwap(_ context.Context, env *Env) ([]Row, error) {
	if env.Snapshot == nil || !env.Snapshot.Swap.Valid {
		return nil, errNoSnapshot
	}
	s := env.Snapshot.Swap
	return single("swap", "Swap", FormatSwap(s.Used, s.Total, env.Units())), nil
}

func collectTheme(_ context.Context, _ *Env) ([]Row, error) {
	home, _ := os.UserHomeDir()
	t := sysinfo.ReadGTKTheme(home, os.Getenv)
	return []Row{
		{Key: "theme", Label: "Theme", Value: t.Theme},
		{Key: "theme", Label: "Icons", Value: t.Icons},
		{Key: "theme", Label: "Font", Value: t.Font},
	}, nil
}

func collectMedia(ctx context.Context, _ *Env) ([]Row, error) {
	v, err := sysinfo.Media(ctx)
	if err != nil {
		return nil, err
	}
	return single("media", "Media", v), nil
}

func collectLocalIP(ctx context.Context, _ *Env) ([]Row, error) {
	ip, err := sysinfo.LocalIP(ctx)
	if err != nil {
		return nil, err
	}
	return single("local_ip", "Local IP", ip), nil
}

func collectBattery(_ context.Context, _ *Env) ([]Row, error) {
	v, err := sysinfo.Battery()
	if err != nil {
		return nil, err
	}
	return single("battery", "Battery", v), nil
}

// --- disk ---

// DiskCollector yields one row per relevant mount.
type DiskCollector struct {
	list     func(ctx context.Context) ([]sysinfo.Mount, error)
	relevant func(ms []sysinfo.Mount) []sysinfo.Mount
}

// NewDiskCollector returns the disk module reading mounts from list.
func NewDiskCollector(list func(ctx context.Context) ([]sysinfo.Mount, error)) *DiskCollector {
	return &DiskCollector{list: list, relevant: sysinfo.RelevantMounts}
}

// Name returns "disk".
func (d *DiskCollector) Name() string { return "disk" }

// Collect filters and orders the mounts and formats each one.
func (d *DiskCollector) Collect(ctx context.Context, env *Env) ([]Row, error) {
	mounts, err := d.list(ctx)
	if err != nil {
		return nil, err
	}
	g := env.General()
	var rows []Row
	for _, m := range d.relevant(mounts) {
		rows = append(rows, Row{
			Key:   "disk",
			Label: m.Label(),
			Value: FormatDisk(m.Used, m.Total, env.Units(), g.ShowDiskBar, env.BarStyle()),
		})
	}
	return rows, nil
}

// --- value formatting ---

// FormatCPU renders "[bar] P% F Model (T°C)". The bar, percent and
// frequency appear only with showBar; the temperature only with hasTemp.
func FormatCPU(c sysmetrics.CPUMetrics, tempC float64, hasTemp, showBar bool, style components.BarStyle) string {
	value := components.CollapseSpaces(c.Model)
	if showBar {
		prefix := fmt.Sprintf("%s %.0f%%", components.PercentBar(c.Percent, barWidth, style), c.Percent)
		if f := FormatFreq(c.Mhz); f != "" {
			prefix += " " + f
		}
		value = prefix + " " + value
	}
	if hasTemp {
		value += " (" + sysinfo.FormatTemp(tempC) + ")"
	}
	return value
}

// FormatFreq renders a clock speed as "1.23GHz" from 1000 MHz up, else
// "987MHz". Zero yields "".
func FormatFreq(mhz float64) string {
	switch {
	case mhz <= 0:
		return ""
	case mhz >= 1000:
		return fmt.Sprintf("%.2fGHz", mhz/1000)
	default:
		return fmt.Sprintf("%.0fMHz", mhz)
	}
}

// FormatMemory renders "U / T" with an optional trailing bar.
func FormatMemory(used, total uint64, units string, showBar bool, style components.BarStyle) string {
	value := components.FormatBytes(used, units) + " / " + components.FormatBytes(total, units)
	if showBar && total > 0 {
		value += " " + components.Bar(used, total, barWidth, style)
	}
	return value
}

// FormatDisk renders "P% (U / T)" with an optional trailing bar.
func FormatDisk(used, total uint64, units string, showBar bool, style components.BarStyle) string {
	value := fmt.Sprintf("%.0f%% (%s / %s)",
		sysmetrics.UsedPercent(used, total),
		components.FormatBytes(used, units),
		components.FormatBytes(total, units))
	if showBar && total > 0 {
		value += " " + components.Bar(used, total, barWidth, style)
	}
	return value
}

// FormatSwap renders "U / T (P%)"; a zero total shows 0%.
func FormatSwap(used, total uint64, units string) string {
	return fmt.Sprintf("%s / %s (%.0f%%)",
		components.FormatBytes(used, units),
		components.FormatBytes(total, units),
		sysmetrics.UsedPercent(used, total))
}
