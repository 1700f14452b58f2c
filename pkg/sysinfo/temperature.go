package sysinfo

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"
)

// Reading is one thermal sensor value.
type Reading struct {
	Label   string
	Celsius float64
}

var (
	cpuSensorKeys = []string{"k10temp", "coretemp", "package", "die"}
	gpuSensorKeys = []string{"amdgpu", "nvidia", "radeon"}
)

// Temperatures returns the current thermal sensor readings. Partial results
// are returned without error when at least one sensor could be read.
func Temperatures(ctx context.Context) ([]Reading, error) {
	stats, err := sensors.TemperaturesWithContext(ctx)
	if len(stats) == 0 {
		if err == nil {
			err = ErrNoData
		}
		return nil, fmt.Errorf("reading sensors: %w", err)
	}
	readings := make([]Reading, 0, len(stats))
	for _, s := range stats {
		readings = append(readings, Reading{Label: s.SensorKey, Celsius: s.Temperature})
	}
	return readings, nil
}

// CPUTemperature averages the valid readings whose label names a CPU
// sensor.
func CPUTemperature(rs []Reading) (float64, bool) {
	var temps []float64
	for _, r := range rs {
		if siContainsAny(strings.ToLower(r.Label), cpuSensorKeys) && siValidTemp(r.Celsius) {
			temps = append(temps, r.Celsius)
		}
	}
	return siAverage(temps)
}

// GPUTemperature averages GPU sensor readings. Edge and composite sensors
// win over the rest; junction is used only when nothing else reports.
func GPUTemperature(rs []Reading) (float64, bool) {
	var edge, junction, other []float64
	for _, r := range rs {
		label := strings.ToLower(r.Label)
		if !siContainsAny(label, gpuSensorKeys) || !siValidTemp(r.Celsius) {
			continue
		}
		switch {
		case strings.Contains(label, "edge"), strings.Contains(label, "composite"):
			edge = append(edge, r.Celsius)
		case strings.Contains(label, "junction"):
			junction = append(junction, r.Celsius)
		default:
			other = append(other, r.Celsius)
		}
	}
	switch {
	case len(edge) > 0:
		return siAverage(edge)
	case len(other) > 0:
		return siAverage(other)
	default:
		return siAverage(junction)
	}
}

// FormatTemp renders a temperature as "45.0°C".
func FormatTemp(c float64) string {
	return fmt.Sprintf("%.1f°C", c)
}

func siValidTemp(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c > 0 && c < 200
}

func siAverage(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

func siContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
