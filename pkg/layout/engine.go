// Package layout walks the configured module keys, collects their rows
// and renders them as the flat list, the grouped tree or the JSON object.
// All three presentations share one collection path.
package layout

import (
	"context"
	"log/slog"
	"strings"

	"github.com/novafetch/novafetch/pkg/collectors"
	"github.com/novafetch/novafetch/pkg/collectors/sysmetrics"
	"github.com/novafetch/novafetch/pkg/config"
)

// Result is the outcome of one collection pass.
type Result struct {
	Rows []collectors.Row

	// Snapshot is the shared CPU/memory/swap sample, nil when no module
	// in the layout needed it or sampling failed.
	Snapshot *sysmetrics.Snapshot
}

// Engine collects rows for a layout.
type Engine struct {
	Registry *collectors.Registry
	Config   *config.Config
	NoColor  bool

	// Snapshot takes the shared sample. New sets it to a sysmetrics
	// sampler with the default settle interval.
	Snapshot func(ctx context.Context) (*sysmetrics.Snapshot, error)
}

// New returns an Engine over reg and cfg.
func New(reg *collectors.Registry, cfg *config.Config, noColor bool) *Engine {
	return &Engine{
		Registry: reg,
		Config:   cfg,
		NoColor:  noColor,
		Snapshot: sysmetrics.New(sysmetrics.DefaultConfig()).Take,
	}
}

// Collect runs every known key of the layout in order. Blank and unknown
// keys are skipped; a failing module contributes no rows.
func (e *Engine) Collect(ctx context.Context) Result {
	keys := e.keys()
	env := &collectors.Env{Config: e.Config, NoColor: e.NoColor}

	var res Result
	if e.needsSnapshot(keys) && e.Snapshot != nil {
		snap, err := e.Snapshot(ctx)
		if err != nil {
			slog.Debug("snapshot incomplete", "err", err)
		}
		res.Snapshot = snap
		env.Snapshot = snap
	}

	for _, key := range keys {
		rows, err := e.Registry.Run(ctx, key, env)
		if err != nil {
			slog.Debug("probe failed", "module", key, "err", err)
			continue
		}
		res.Rows = append(res.Rows, rows...)
	}
	e.logTimings(ctx)
	return res
}

// logTimings reports per-module probe latency at debug level.
func (e *Engine) logTimings(ctx context.Context) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}
	for _, st := range e.Registry.AllStatus() {
		if st.RunCount == 0 {
			continue
		}
		slog.Debug("probe timing", "module", st.Name, "latency", st.LastLatency, "failed", st.LastError != nil)
	}
}

// keys returns the trimmed layout keys that name a registered module.
func (e *Engine) keys() []string {
	var keys []string
	for _, k := range e.Config.Layout {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := e.Registry.Get(k); !ok {
			slog.Debug("unknown layout key", "key", k)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (e *Engine) needsSnapshot(keys []string) bool {
	for _, k := range keys {
		if c, ok := e.Registry.Get(k); ok && collectors.NeedsSnapshot(c) {
			return true
		}
	}
	return false
}
