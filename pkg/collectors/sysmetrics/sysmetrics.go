// Package sysmetrics takes the shared CPU, memory and swap snapshot used by
// the cpu, memory and swap modules. It uses gopsutil so the same code runs
// on Linux, macOS, Windows and the BSDs.
package sysmetrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Config controls how a snapshot is taken.
type Config struct {
	// Settle is the pause between priming and reading CPU utilisation
	// (default 200ms). gopsutil reports 0% for a zero-length window.
	Settle time.Duration
}

// DefaultConfig returns a Config with the default settle interval.
func DefaultConfig() Config {
	return Config{
		Settle: 200 * time.Millisecond,
	}
}

// --- Metric data types ---

// CPUMetrics holds the model and global utilisation of the first CPU.
type CPUMetrics struct {
	Model   string  `json:"model"`
	Mhz     float64 `json:"mhz"`
	Percent float64 `json:"percent"` // 0-100
	Count   int     `json:"count"`
	Valid   bool    `json:"-"`
}

// MemoryMetrics holds physical memory usage in bytes.
type MemoryMetrics struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Valid bool   `json:"-"`
}

// SwapMetrics holds swap usage in bytes. A host without swap reports a
// valid zero total.
type SwapMetrics struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Valid bool   `json:"-"`
}

// Snapshot is the aggregate returned by Take.
type Snapshot struct {
	CPU       CPUMetrics    `json:"cpu"`
	Memory    MemoryMetrics `json:"memory"`
	Swap      SwapMetrics   `json:"swap"`
	Timestamp time.Time     `json:"timestamp"`
}

// UsedPercent returns used/total as a percentage, or 0 for a zero total.
func UsedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// --- Sampler implementation ---

// Sampler takes snapshots via gopsutil.
type Sampler struct {
	cfg   Config
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Sampler. Zero-value fields in cfg are replaced with
// defaults.
func New(cfg Config) *Sampler {
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultConfig().Settle
	}
	return &Sampler{cfg: cfg, sleep: sleepCtx}
}

// Settle returns the configured CPU settle interval.
func (s *Sampler) Settle() time.Duration {
	return s.cfg.Settle
}

// Take primes CPU utilisation, waits the settle interval and reads all
// metrics. If individual parts fail it still returns as much data as
// possible together with an aggregated error; the Valid flags tell which
// parts are usable. A cancelled context returns immediately.
func (s *Sampler) Take(ctx context.Context) (*Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	snap := &Snapshot{}
	var errs []string

	// Priming call; the reading after the pause covers the settle window.
	if _, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, fmt.Sprintf("cpu prime: %v", err))
	}
	if err := s.sleep(ctx, s.cfg.Settle); err != nil {
		return nil, err
	}
	snap.Timestamp = time.Now()

	if err := collectCPU(ctx, &snap.CPU); err != nil {
		errs = append(errs, fmt.Sprintf("cpu: %v", err))
	}
	if err := collectMemory(ctx, &snap.Memory); err != nil {
		errs = append(errs, fmt.Sprintf("memory: %v", err))
	}
	if err := collectSwap(ctx, &snap.Swap); err != nil {
		errs = append(errs, fmt.Sprintf("swap: %v", err))
	}

	if !snap.CPU.Valid && !snap.Memory.Valid && !snap.Swap.Valid {
		return nil, fmt.Errorf("sysmetrics: all sub-collectors failed: %s", strings.Join(errs, "; "))
	}
	if len(errs) > 0 {
		return snap, fmt.Errorf("sysmetrics: partial errors: %s", strings.Join(errs, "; "))
	}
	return snap, nil
}

// --- sub-collectors ---

func collectCPU(ctx context.Context, m *CPUMetrics) error {
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	if len(total) > 0 {
		m.Percent = clampPercent(total[0])
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return fmt.Errorf("no cpu info")
	}
	m.Model = strings.Join(strings.Fields(infos[0].ModelName), " ")
	m.Mhz = infos[0].Mhz
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		m.Count = n
	}
	m.Valid = m.Model != ""
	if !m.Valid {
		return fmt.Errorf("empty cpu model")
	}
	return nil
}

func collectMemory(ctx context.Context, m *MemoryMetrics) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	m.Total = vm.Total
	m.Used = vm.Used
	m.Valid = true
	return nil
}

func collectSwap(ctx context.Context, m *SwapMetrics) error {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	m.Total = sw.Total
	m.Used = min(sw.Used, sw.Total)
	m.Valid = true
	return nil
}

func clampPercent(p float64) float64 {
	return max(0, min(p, 100))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
