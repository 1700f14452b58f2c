// Package collectors defines the module interface, the registry that maps
// layout keys to modules, and the built-in module table. Each module turns
// one layout key into zero or more display rows; the layout engine walks
// the configured keys and asks the registry for each one.
package collectors

import (
	"context"
	"sync"
	"time"

	"github.com/novafetch/novafetch/pkg/collectors/sysmetrics"
	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/config"
	"github.com/novafetch/novafetch/pkg/sysinfo"
)

// Row is one line of the report. An empty Label marks a header row, which
// is printed without label or separator.
type Row struct {
	Key   string
	Label string
	Value string
}

// IsHeader reports whether r is printed without label and separator.
func (r Row) IsHeader() bool { return r.Label == "" }

// Collector is the interface all modules implement.
type Collector interface {
	// Name returns the layout key this collector answers (e.g., "cpu").
	Name() string

	// Collect produces the module's rows. An error means the module yields
	// no rows; the caller logs it and moves on.
	Collect(ctx context.Context, env *Env) ([]Row, error)
}

// SnapshotUser is implemented by collectors that read the shared
// sysmetrics snapshot. The engine takes one snapshot per run when any
// collector in the layout needs it.
type SnapshotUser interface {
	NeedsSnapshot() bool
}

// NeedsSnapshot reports whether c reads the shared snapshot.
func NeedsSnapshot(c Collector) bool {
	if su, ok := c.(SnapshotUser); ok {
		return su.NeedsSnapshot()
	}
	return false
}

// Env carries the per-run inputs shared by all collectors.
type Env struct {
	Config *config.Config

	// Snapshot is nil when no collector needed it or taking it failed.
	Snapshot *sysmetrics.Snapshot

	// NoColor suppresses SGR sequences in module values (palette).
	NoColor bool

	// Temperatures overrides the thermal sensor source; nil means
	// sysinfo.Temperatures.
	Temperatures func(ctx context.Context) ([]sysinfo.Reading, error)

	readingsOnce sync.Once
	readings     []sysinfo.Reading
}

// BarStyle returns the configured bar style.
func (e *Env) BarStyle() components.BarStyle {
	if e.Config == nil {
		return components.BarBlocks
	}
	return components.BarStyleByName(e.Config.General.BarStyle)
}

// Units returns the configured unit type for byte values.
func (e *Env) Units() string {
	if e.Config == nil {
		return components.UnitStandard
	}
	return e.Config.General.UnitType
}

// General returns the general settings, or the defaults without a config.
func (e *Env) General() config.GeneralConfig {
	if e.Config == nil {
		return config.DefaultConfig().General
	}
	return e.Config.General
}

// Readings returns the thermal sensor readings, read at most once per run.
// Failures yield an empty slice.
func (e *Env) Readings(ctx context.Context) []sysinfo.Reading {
	e.readingsOnce.Do(func() {
		src := e.Temperatures
		if src == nil {
			src = sysinfo.Temperatures
		}
		e.readings, _ = src(ctx)
	})
	return e.readings
}

// CollectorStatus tracks the last run of a single collector. The registry
// updates it after every Run.
type CollectorStatus struct {
	Name        string
	LastRun     time.Time
	LastError   error
	RunCount    int64
	ErrorCount  int64
	LastLatency time.Duration
}

// Func adapts a plain function to the Collector interface.
type Func struct {
	name     string
	snapshot bool
	fn       func(ctx context.Context, env *Env) ([]Row, error)
}

// NewFunc returns a collector named name that calls fn.
func NewFunc(name string, fn func(ctx context.Context, env *Env) ([]Row, error)) *Func {
	return &Func{name: name, fn: fn}
}

// WithSnapshot marks the collector as a reader of the shared snapshot.
func (f *Func) WithSnapshot() *Func {
	f.snapshot = true
	return f
}

// Name returns the layout key.
func (f *Func) Name() string { return f.name }

// NeedsSnapshot reports whether the collector reads the shared snapshot.
func (f *Func) NeedsSnapshot() bool { return f.snapshot }

// Collect calls the wrapped function.
func (f *Func) Collect(ctx context.Context, env *Env) ([]Row, error) {
	return f.fn(ctx, env)
}

// single wraps one row.
func single(key, label, value string) []Row {
	return []Row{{Key: key, Label: label, Value: value}}
}
