package sysmetrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Config tests ---

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Settle != 200*time.Millisecond {
		t.Errorf("DefaultConfig Settle = %v, want 200ms", cfg.Settle)
	}
}

func TestNewWithZeroConfig(t *testing.T) {
	s := New(Config{})
	if got := s.Settle(); got != 200*time.Millisecond {
		t.Errorf("zero Settle should default to 200ms, got %v", got)
	}
}

func TestNewCustomSettle(t *testing.T) {
	s := New(Config{Settle: 5 * time.Millisecond})
	if got := s.Settle(); got != 5*time.Millisecond {
		t.Errorf("Settle() = %v, want 5ms", got)
	}
}

// --- Helpers ---

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		used, total uint64
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{50, 200, 25},
		{200, 200, 100},
	}
	for _, tt := range tests {
		if got := UsedPercent(tt.used, tt.total); got != tt.want {
			t.Errorf("UsedPercent(%d, %d) = %v, want %v", tt.used, tt.total, got, tt.want)
		}
	}
}

func TestClampPercent(t *testing.T) {
	if got := clampPercent(-3); got != 0 {
		t.Errorf("clampPercent(-3) = %v, want 0", got)
	}
	if got := clampPercent(140); got != 100 {
		t.Errorf("clampPercent(140) = %v, want 100", got)
	}
	if got := clampPercent(42.5); got != 42.5 {
		t.Errorf("clampPercent(42.5) = %v, want 42.5", got)
	}
}

// --- Settle behaviour ---

func TestTakeSleepsSettleInterval(t *testing.T) {
	s := New(Config{Settle: 7 * time.Millisecond})
	var slept time.Duration
	s.sleep = func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	}
	_, _ = s.Take(context.Background())
	if slept != 7*time.Millisecond {
		t.Errorf("slept %v, want 7ms", slept)
	}
}

func TestTakeWithCancelledContext(t *testing.T) {
	s := New(DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Take(ctx); err == nil {
		t.Error("Take with cancelled context should return error")
	}
}

func TestTakeAbortsWhenSleepFails(t *testing.T) {
	s := New(DefaultConfig())
	boom := errors.New("interrupted")
	s.sleep = func(context.Context, time.Duration) error { return boom }

	snap, err := s.Take(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Take error = %v, want %v", err, boom)
	}
	if snap != nil {
		t.Error("Take returned a snapshot after an interrupted settle")
	}
}

func TestSleepCtxCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleepCtx(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepCtx error = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("sleepCtx did not return promptly on cancellation")
	}
}

// --- Integration tests (run on actual host) ---

func TestTakeReturnsValidSnapshot(t *testing.T) {
	s := New(Config{Settle: 10 * time.Millisecond})
	snap, err := s.Take(context.Background())
	if snap == nil {
		t.Skipf("no metrics on this host: %v", err)
	}

	if snap.CPU.Valid {
		if snap.CPU.Percent < 0 || snap.CPU.Percent > 100 {
			t.Errorf("CPU.Percent = %f, want 0-100", snap.CPU.Percent)
		}
		if snap.CPU.Model == "" {
			t.Error("valid CPU with empty model")
		}
	}
	if snap.Memory.Valid {
		if snap.Memory.Total == 0 {
			t.Error("Memory.Total should be > 0")
		}
		if snap.Memory.Used > snap.Memory.Total {
			t.Errorf("Memory.Used (%d) > Memory.Total (%d)", snap.Memory.Used, snap.Memory.Total)
		}
	}
	if snap.Swap.Valid && snap.Swap.Used > snap.Swap.Total {
		t.Errorf("Swap.Used (%d) > Swap.Total (%d)", snap.Swap.Used, snap.Swap.Total)
	}
	if time.Since(snap.Timestamp) > 5*time.Second {
		t.Errorf("Timestamp is too old: %v", snap.Timestamp)
	}
}
