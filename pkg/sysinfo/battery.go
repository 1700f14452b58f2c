package sysinfo

import (
	"fmt"
	"math"
	"strings"

	"github.com/distatus/battery"
)

// Battery returns "P% (State)" for the first battery that reports a
// capacity.
func Battery() (string, error) {
	bats, err := battery.GetAll()
	if len(bats) == 0 {
		if err == nil {
			err = ErrNoData
		}
		return "", fmt.Errorf("reading batteries: %w", err)
	}
	for _, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		return FormatBattery(b.Current, b.Full, b.State.String()), nil
	}
	return "", ErrNoData
}

// FormatBattery renders a charge level and state, e.g. "87% (Charging)".
func FormatBattery(current, full float64, state string) string {
	pct := 0.0
	if full > 0 {
		pct = math.Round(current / full * 100)
	}
	pct = max(0, min(pct, 100))
	state = strings.TrimSpace(state)
	if state == "" {
		state = Unknown
	}
	return fmt.Sprintf("%d%% (%s)", int(pct), strings.ToUpper(state[:1])+strings.ToLower(state[1:]))
}
