package collectors

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/novafetch/novafetch/pkg/collectors/sysmetrics"
	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/config"
	"github.com/novafetch/novafetch/pkg/sysinfo"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// --- Registry Tests ---

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	c := NewMockCollector("test")

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, ok := r.Get("test")
	if !ok {
		t.Fatal("Get returned false for registered collector")
	}
	if got.Name() != "test" {
		t.Errorf("Name = %q, want %q", got.Name(), "test")
	}
}

func TestRegistryDuplicateNameError(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewMockCollector("dup")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := r.Register(NewMockCollector("dup")); err == nil {
		t.Fatal("second Register should have returned an error for duplicate name")
	}
}

func TestRegistryMustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegister with duplicate names did not panic")
		}
	}()
	NewRegistry().MustRegister(NewMockCollector("x"), NewMockCollector("x"))
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockCollector("gone"))

	r.Unregister("gone")

	if _, ok := r.Get("gone"); ok {
		t.Fatal("Get returned true after Unregister")
	}
	if _, ok := r.Status("gone"); ok {
		t.Fatal("Status returned true after Unregister")
	}
	// Should not panic.
	r.Unregister("does-not-exist")
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockCollector("charlie"))
	_ = r.Register(NewMockCollector("alpha"))
	_ = r.Register(NewMockCollector("bravo"))

	want := []string{"alpha", "bravo", "charlie"}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want %v", got, want)
	}
	if got := NewRegistry().List(); len(got) != 0 {
		t.Errorf("List on empty registry = %v, want empty", got)
	}
}

func TestRegistryRunRecordsStatus(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	ok := NewMockCollector("ok", WithValue("OK", "fine"))
	bad := NewMockCollector("bad", WithError(boom))
	r.MustRegister(ok, bad)

	rows, err := r.Run(context.Background(), "ok", &Env{})
	if err != nil {
		t.Fatalf("Run(ok): %v", err)
	}
	want := []Row{{Key: "ok", Label: "OK", Value: "fine"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}

	if _, err := r.Run(context.Background(), "bad", &Env{}); !errors.Is(err, boom) {
		t.Errorf("Run(bad) error = %v, want wrapped %v", err, boom)
	}

	s, _ := r.Status("ok")
	if s.RunCount != 1 || s.ErrorCount != 0 || s.LastRun.IsZero() {
		t.Errorf("ok status = %+v", s)
	}
	s, _ = r.Status("bad")
	if s.RunCount != 1 || s.ErrorCount != 1 || !errors.Is(s.LastError, boom) {
		t.Errorf("bad status = %+v", s)
	}

	all := r.AllStatus()
	if len(all) != 2 || all[0].Name != "bad" || all[1].Name != "ok" {
		t.Errorf("AllStatus not sorted: %+v", all)
	}
}

func TestRegistryRunUnknown(t *testing.T) {
	if _, err := NewRegistry().Run(context.Background(), "nope", &Env{}); err == nil {
		t.Error("Run on unregistered name should fail")
	}
}

func TestRegistryConcurrentSafety(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i))
			_ = r.Register(NewMockCollector(name, WithValue("L", "V")))
			_, _ = r.Run(context.Background(), name, &Env{})
			_ = r.List()
			_ = r.AllStatus()
		}(i)
	}
	wg.Wait()
	if got := len(r.List()); got != 20 {
		t.Errorf("registered %d collectors, want 20", got)
	}
}

// --- Mock Collector Tests ---

func TestMockCollectorDefaults(t *testing.T) {
	m := NewMockCollector("test")
	if m.Name() != "test" {
		t.Errorf("Name = %q, want %q", m.Name(), "test")
	}
	if NeedsSnapshot(m) {
		t.Error("default mock should not need a snapshot")
	}
	if m.CallCount() != 0 {
		t.Errorf("initial CallCount = %d, want 0", m.CallCount())
	}
}

func TestMockCollectorCallCountAndEnv(t *testing.T) {
	m := NewMockCollector("counter", WithSnapshotNeed())
	env := &Env{NoColor: true}
	for i := 0; i < 5; i++ {
		_, _ = m.Collect(context.Background(), env)
	}
	if m.CallCount() != 5 {
		t.Errorf("CallCount = %d, want 5", m.CallCount())
	}
	if m.LastEnv() != env {
		t.Error("LastEnv did not return the passed Env")
	}
	if !NeedsSnapshot(m) {
		t.Error("WithSnapshotNeed mock reports no snapshot need")
	}
}

func TestMockCollectorSetters(t *testing.T) {
	m := NewMockCollector("mut")
	m.SetRows(Row{Label: "A", Value: "1"}, Row{Key: "other", Label: "B", Value: "2"})
	rows, err := m.Collect(context.Background(), &Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Key != "mut" || rows[1].Key != "other" {
		t.Errorf("row keys = %q, %q", rows[0].Key, rows[1].Key)
	}

	m.SetError(errors.New("boom"))
	if _, err := m.Collect(context.Background(), &Env{}); err == nil || err.Error() != "boom" {
		t.Errorf("Error = %v, want 'boom'", err)
	}
}

func TestMockCollectorCollectFuncSeesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMockCollector("ctx", WithCollectFunc(func(ctx context.Context, _ *Env) ([]Row, error) {
		return nil, ctx.Err()
	}))
	if _, err := m.Collect(ctx, &Env{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Collect error = %v, want context.Canceled", err)
	}
	if m.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", m.CallCount())
	}
}

// --- Env ---

func TestEnvReadingsReadOnce(t *testing.T) {
	calls := 0
	env := &Env{Temperatures: func(context.Context) ([]sysinfo.Reading, error) {
		calls++
		return []sysinfo.Reading{{Label: "coretemp_package", Celsius: 50}}, nil
	}}
	for i := 0; i < 3; i++ {
		if got := env.Readings(context.Background()); len(got) != 1 {
			t.Fatalf("Readings = %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("sensor source called %d times, want 1", calls)
	}
}

func TestEnvDefaultsWithoutConfig(t *testing.T) {
	env := &Env{}
	if env.BarStyle() != components.BarBlocks {
		t.Errorf("BarStyle = %+v, want blocks", env.BarStyle())
	}
	if env.Units() != components.UnitStandard {
		t.Errorf("Units = %q, want standard", env.Units())
	}
	if !env.General().ShowCPUBar {
		t.Error("General() without config should use defaults")
	}
}

// --- Built-in table ---

func TestBuiltinCoversEveryModule(t *testing.T) {
	r := Builtin()
	keys := append(append([]string(nil), config.DefaultLayout...), "palette", "battery")
	for _, k := range keys {
		if _, ok := r.Get(k); !ok {
			t.Errorf("built-in module %q not registered", k)
		}
	}
	for _, k := range []string{"cpu", "memory", "swap"} {
		c, _ := r.Get(k)
		if !NeedsSnapshot(c) {
			t.Errorf("%s does not request the snapshot", k)
		}
	}
	for _, k := range []string{"gpu", "disk", "os"} {
		c, _ := r.Get(k)
		if NeedsSnapshot(c) {
			t.Errorf("%s requests the snapshot", k)
		}
	}
}

func TestCPUWithoutSnapshotIsNotAvailable(t *testing.T) {
	rows, err := collectCPU(context.Background(), &Env{})
	if err != nil {
		t.Fatalf("collectCPU: %v", err)
	}
	want := []Row{{Key: "cpu", Label: "CPU", Value: sysinfo.NotAvailable}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestMemoryAndSwapWithoutSnapshotYieldNoRows(t *testing.T) {
	if rows, err := collectMemory(context.Background(), &Env{}); err == nil || rows != nil {
		t.Errorf("collectMemory = %v, %v; want no rows and an error", rows, err)
	}
	if rows, err := collectSwap(context.Background(), &Env{}); err == nil || rows != nil {
		t.Errorf("collectSwap = %v, %v; want no rows and an error", rows, err)
	}
}

func TestCPUFromSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.BarStyle = "classic"
	env := &Env{
		Config: cfg,
		Snapshot: &sysmetrics.Snapshot{CPU: sysmetrics.CPUMetrics{
			Model: "AMD Ryzen 7 5800X", Mhz: 3800, Percent: 50, Valid: true,
		}},
		Temperatures: func(context.Context) ([]sysinfo.Reading, error) {
			return []sysinfo.Reading{{Label: "k10temp_tctl", Celsius: 45}}, nil
		},
	}
	rows, err := collectCPU(context.Background(), env)
	if err != nil {
		t.Fatalf("collectCPU: %v", err)
	}
	want := "[|||||.....] 50% 3.80GHz AMD Ryzen 7 5800X (45.0°C)"
	if rows[0].Value != want {
		t.Errorf("cpu value = %q, want %q", rows[0].Value, want)
	}
}

func TestSwapFromSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.UnitType = "iec"
	env := &Env{Config: cfg, Snapshot: &sysmetrics.Snapshot{
		Swap: sysmetrics.SwapMetrics{Valid: true},
	}}
	rows, err := collectSwap(context.Background(), env)
	if err != nil {
		t.Fatalf("collectSwap: %v", err)
	}
	if rows[0].Value != "0 B / 0 B (0%)" {
		t.Errorf("swap value = %q, want %q", rows[0].Value, "0 B / 0 B (0%)")
	}
}

// --- Value formatting ---

func TestFormatCPU(t *testing.T) {
	c := sysmetrics.CPUMetrics{Model: "Intel(R)  Core(TM) i7", Mhz: 987, Percent: 0}
	if got := FormatCPU(c, 0, false, false, components.BarBlocks); got != "Intel(R) Core(TM) i7" {
		t.Errorf("FormatCPU without bar = %q", got)
	}
	got := FormatCPU(c, 61.26, true, true, components.BarDots)
	want := "○○○○○○○○○○ 0% 987MHz Intel(R) Core(TM) i7 (61.3°C)"
	if got != want {
		t.Errorf("FormatCPU = %q, want %q", got, want)
	}
	c.Mhz = 0
	if got := FormatCPU(c, 0, false, true, components.BarDots); got != "○○○○○○○○○○ 0% Intel(R) Core(TM) i7" {
		t.Errorf("FormatCPU without frequency = %q", got)
	}
}

func TestFormatFreq(t *testing.T) {
	tests := []struct {
		mhz  float64
		want string
	}{
		{0, ""},
		{987, "987MHz"},
		{999.6, "1000MHz"},
		{1000, "1.00GHz"},
		{1234, "1.23GHz"},
	}
	for _, tt := range tests {
		if got := FormatFreq(tt.mhz); got != tt.want {
			t.Errorf("FormatFreq(%v) = %q, want %q", tt.mhz, got, tt.want)
		}
	}
}

func TestFormatMemory(t *testing.T) {
	if got := FormatMemory(2*gib, 4*gib, "iec", false, components.BarBlocks); got != "2.00 GiB / 4.00 GiB" {
		t.Errorf("FormatMemory = %q", got)
	}
	got := FormatMemory(2*gib, 4*gib, "iec", true, components.BarClassic)
	if got != "2.00 GiB / 4.00 GiB [|||||.....]" {
		t.Errorf("FormatMemory with bar = %q", got)
	}
	if got := FormatMemory(0, 0, "iec", true, components.BarClassic); got != "0 B / 0 B" {
		t.Errorf("FormatMemory zero total = %q, want no bar", got)
	}
}

func TestFormatDisk(t *testing.T) {
	if got := FormatDisk(50*gib, 100*gib, "iec", false, components.BarBlocks); got != "50% (50.00 GiB / 100.00 GiB)" {
		t.Errorf("FormatDisk = %q", got)
	}
	got := FormatDisk(100*gib, 100*gib, "iec", true, components.BarClassic)
	if got != "100% (100.00 GiB / 100.00 GiB) [||||||||||]" {
		t.Errorf("FormatDisk with bar = %q", got)
	}
}

func TestFormatSwap(t *testing.T) {
	if got := FormatSwap(512*mib, 2*gib, "iec"); got != "512.00 MiB / 2.00 GiB (25%)" {
		t.Errorf("FormatSwap = %q", got)
	}
}

// --- Disk module ---

func TestDiskRowsOrderedRootFirst(t *testing.T) {
	mounts := []sysinfo.Mount{
		{Path: "/home", Device: "/dev/nvme0n1p3", FSType: "ext4", Total: 100 * gib, Used: 25 * gib},
		{Path: "/tmp", Device: "tmpfs", FSType: "tmpfs", Total: gib, Used: 0},
		{Path: "/snap/core/1", Device: "/dev/loop1", FSType: "squashfs", Total: gib, Used: gib},
		{Path: "/", Device: "/dev/nvme0n1p2", FSType: "ext4", Total: 50 * gib, Used: 10 * gib},
		{Path: "/boot", Device: "/dev/nvme0n1p1", FSType: "vfat", Total: gib, Used: 0},
	}
	d := NewDiskCollector(func(context.Context) ([]sysinfo.Mount, error) { return mounts, nil })
	cfg := config.DefaultConfig()
	cfg.General.ShowDiskBar = false
	cfg.General.UnitType = "iec"

	rows, err := d.Collect(context.Background(), &Env{Config: cfg})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var labels []string
	for _, r := range rows {
		labels = append(labels, r.Label)
		if r.Key != "disk" {
			t.Errorf("row key = %q, want disk", r.Key)
		}
	}
	want := []string{"Disk (/, ext4)", "Disk (/boot, vfat)", "Disk (/home, ext4)"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
	if rows[2].Value != "25% (25.00 GiB / 100.00 GiB)" {
		t.Errorf("/home value = %q", rows[2].Value)
	}
}

func TestDiskListFailureYieldsNoRows(t *testing.T) {
	d := NewDiskCollector(func(context.Context) ([]sysinfo.Mount, error) {
		return nil, errors.New("no partitions")
	})
	rows, err := d.Collect(context.Background(), &Env{})
	if err == nil || len(rows) != 0 {
		t.Errorf("Collect = %v, %v; want no rows and an error", rows, err)
	}
}

func TestPaletteHonoursNoColor(t *testing.T) {
	c, _ := Builtin().Get("palette")
	rows, err := c.Collect(context.Background(), &Env{NoColor: true})
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("palette rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if !r.IsHeader() || r.Key != "palette" {
			t.Errorf("palette row = %+v, want header row", r)
		}
		if strings.Contains(r.Value, "\x1b") {
			t.Errorf("no-color palette row carries escapes: %q", r.Value)
		}
	}
}
