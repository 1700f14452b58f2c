package collectors

import (
	"context"
	"sync"
	"sync/atomic"
)

// MockCollector implements Collector for testing. Rows and error are
// configurable and it tracks how many times Collect has been called.
type MockCollector struct {
	name     string
	rows     []Row
	err      error
	snapshot bool

	mu        sync.RWMutex
	callCount atomic.Int64
	lastEnv   *Env

	// CollectFunc, if set, overrides the default Collect behavior.
	CollectFunc func(ctx context.Context, env *Env) ([]Row, error)
}

// MockCollectorOption configures a MockCollector.
type MockCollectorOption func(*MockCollector)

// WithRows sets the rows returned by Collect. Rows without a Key get the
// collector name.
func WithRows(rows ...Row) MockCollectorOption {
	return func(m *MockCollector) { m.rows = rows }
}

// WithValue makes Collect return one row with the given label and value.
func WithValue(label, value string) MockCollectorOption {
	return func(m *MockCollector) { m.rows = []Row{{Label: label, Value: value}} }
}

// WithError sets the error returned by Collect.
func WithError(err error) MockCollectorOption {
	return func(m *MockCollector) { m.err = err }
}

// WithSnapshotNeed marks the mock as a reader of the shared snapshot.
func WithSnapshotNeed() MockCollectorOption {
	return func(m *MockCollector) { m.snapshot = true }
}

// WithCollectFunc sets a custom function for Collect.
func WithCollectFunc(fn func(ctx context.Context, env *Env) ([]Row, error)) MockCollectorOption {
	return func(m *MockCollector) { m.CollectFunc = fn }
}

// NewMockCollector creates a mock collector with the given name and options.
func NewMockCollector(name string, opts ...MockCollectorOption) *MockCollector {
	m := &MockCollector{name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the collector name.
func (m *MockCollector) Name() string { return m.name }

// NeedsSnapshot reports the configured snapshot need.
func (m *MockCollector) NeedsSnapshot() bool { return m.snapshot }

// SetRows updates the returned rows (thread-safe).
func (m *MockCollector) SetRows(rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = rows
}

// SetError updates the returned error (thread-safe).
func (m *MockCollector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Collect performs a mock collection. It increments the call counter,
// remembers env and returns the configured rows and error, or delegates to
// CollectFunc if set.
func (m *MockCollector) Collect(ctx context.Context, env *Env) ([]Row, error) {
	m.callCount.Add(1)
	m.mu.Lock()
	m.lastEnv = env
	m.mu.Unlock()

	if m.CollectFunc != nil {
		return m.CollectFunc(ctx, env)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]Row, len(m.rows))
	for i, r := range m.rows {
		if r.Key == "" {
			r.Key = m.name
		}
		rows[i] = r
	}
	return rows, nil
}

// CallCount returns how many times Collect has been called.
func (m *MockCollector) CallCount() int64 {
	return m.callCount.Load()
}

// LastEnv returns the Env passed to the most recent Collect call.
func (m *MockCollector) LastEnv() *Env {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastEnv
}
