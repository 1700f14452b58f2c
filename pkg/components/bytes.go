package components

import (
	"fmt"
	"strings"
)

// Unit types accepted by FormatBytes.
const (
	UnitStandard = "standard"
	UnitIEC      = "iec"
	UnitSI       = "si"
)

var (
	unitsStandard = []string{"B", "KB", "MB", "GB", "TB"}
	unitsIEC      = []string{"B", "KiB", "MiB", "GiB", "TiB"}
)

// FormatBytes renders n with two fractional digits and a unit suffix:
//
//	iec       base 1024, B KiB MiB GiB TiB
//	si        base 1000, B KB MB GB TB
//	standard  base 1024, B KB MB GB TB (anything unrecognized)
//
// Zero is always "0 B".
func FormatBytes(n uint64, unitType string) string {
	base, units := 1024.0, unitsStandard
	switch strings.ToLower(unitType) {
	case UnitIEC:
		units = unitsIEC
	case UnitSI:
		base = 1000
	}

	if n == 0 {
		return "0 " + units[0]
	}

	v := float64(n)
	idx := 0
	for v >= base && idx < len(units)-1 {
		v /= base
		idx++
	}
	return fmt.Sprintf("%.2f %s", v, units[idx])
}
