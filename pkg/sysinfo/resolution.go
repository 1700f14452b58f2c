package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Display is one active output mode.
type Display struct {
	Width  int
	Height int
	Hz     float64 // 0 when unknown
}

func (d Display) String() string {
	if d.Hz > 0 {
		return fmt.Sprintf("%dx%d @ %dHz", d.Width, d.Height, int(d.Hz))
	}
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Resolution returns every active display joined with ", ", or Dash.
func Resolution(ctx context.Context) string {
	displays := siDisplays(ctx)
	if len(displays) == 0 {
		return Dash
	}
	parts := make([]string, len(displays))
	for i, d := range displays {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}

// siParseXrandr reads the active ("*") mode of each output from
// `xrandr --current`.
func siParseXrandr(out string) []Display {
	var displays []Display
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, " ") || !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		w, h, ok := siParseWxH(fields[0], "x")
		if !ok {
			continue
		}
		d := Display{Width: w, Height: h}
		for _, f := range fields[1:] {
			if strings.Contains(f, "*") {
				d.Hz = siParseFloat(strings.TrimRight(f, "*+"))
				break
			}
		}
		displays = append(displays, d)
	}
	return displays
}

// siParseSystemProfiler reads "Resolution:" lines from
// `system_profiler SPDisplaysDataType`. The refresh rate comes from the
// same line or the following "UI Looks like:" line.
func siParseSystemProfiler(out string) []Display {
	var displays []Display
	lines := siNonEmptyLines(out)
	for i, line := range lines {
		v, ok := strings.CutPrefix(line, "Resolution:")
		if !ok {
			continue
		}
		fields := strings.Fields(v)
		if len(fields) < 3 || fields[1] != "x" {
			continue
		}
		w, err1 := strconv.Atoi(fields[0])
		h, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			continue
		}
		d := Display{Width: w, Height: h, Hz: siParseRate(v)}
		if d.Hz == 0 && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "UI Looks like:") {
			d.Hz = siParseRate(lines[i+1])
		}
		displays = append(displays, d)
	}
	return displays
}

// siParseRate extracts N from "... @ N Hz" or "... @ NHz".
func siParseRate(s string) float64 {
	_, after, ok := strings.Cut(s, "@")
	if !ok {
		return 0
	}
	after = strings.TrimSpace(after)
	if i := strings.Index(strings.ToLower(after), "hz"); i >= 0 {
		after = after[:i]
	}
	return siParseFloat(after)
}

// siParseWmicResolution parses the table printed by
// `wmic path win32_videocontroller get CurrentHorizontalResolution,...`.
// wmic orders columns itself, so the header decides the field positions.
func siParseWmicResolution(out string) []Display {
	lines := siNonEmptyLines(out)
	if len(lines) < 2 {
		return nil
	}
	col := make(map[string]int)
	for i, name := range strings.Fields(lines[0]) {
		col[strings.ToLower(name)] = i
	}
	wi, ok1 := col["currenthorizontalresolution"]
	hi, ok2 := col["currentverticalresolution"]
	ri, ok3 := col["currentrefreshrate"]
	if !ok1 || !ok2 {
		return nil
	}

	var displays []Display
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) <= max(wi, hi) {
			continue
		}
		w, err1 := strconv.Atoi(fields[wi])
		h, err2 := strconv.Atoi(fields[hi])
		if err1 != nil || err2 != nil || w == 0 || h == 0 {
			continue
		}
		d := Display{Width: w, Height: h}
		if ok3 && ri < len(fields) {
			d.Hz = siParseFloat(fields[ri])
		}
		displays = append(displays, d)
	}
	return displays
}

func siParseWxH(s, sep string) (int, int, bool) {
	ws, hs, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, false
	}
	hs = strings.TrimRightFunc(hs, func(r rune) bool { return r < '0' || r > '9' })
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return w, h, true
}
