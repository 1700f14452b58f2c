package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// GenericGPU is reported when no GPU name could be detected.
const GenericGPU = "Generic GPU"

// integratedGPUMarkers identify integrated adapters when picking a dedicated
// one from several candidates.
var integratedGPUMarkers = []string{
	"Intel UHD",
	"Intel HD",
	"Intel Graphics",
	"AMD Radeon Graphics",
	"Mesa",
}

// corporateNoise is stripped from names that carry no bracketed model.
var corporateNoise = []string{
	"Corporation",
	"Inc.",
	"Co.",
	"Ltd.",
	"Limited",
	"Advanced Micro Devices, ",
	"Advanced Micro Devices",
}

// GPUName returns the cleaned name of the primary GPU. The platform listing
// is tried first, then thermal sensor labels. It returns GenericGPU when
// nothing usable is found.
func GPUName(ctx context.Context, readings []Reading) string {
	if raw := PreferDedicated(siGPUCandidates(ctx)); raw != "" {
		if name := CleanGPUName(raw); name != "" {
			return name
		}
	}
	labels := make([]string, 0, len(readings))
	for _, r := range readings {
		labels = append(labels, r.Label)
	}
	if name := siGPUFromSensors(labels); name != "" {
		return name
	}
	return GenericGPU
}

// PreferDedicated returns the first candidate that is not a known integrated
// adapter. If every candidate is integrated, the de-duplicated list is
// joined with ", ".
func PreferDedicated(gpus []string) string {
	if len(gpus) == 0 {
		return ""
	}
	for _, g := range gpus {
		if !siContainsAny(g, integratedGPUMarkers) && !siContainsAny(CleanGPUName(g), integratedGPUMarkers) {
			return g
		}
	}
	var uniq []string
	for _, g := range gpus {
		if len(uniq) == 0 || uniq[len(uniq)-1] != g {
			uniq = append(uniq, g)
		}
	}
	return strings.Join(uniq, ", ")
}

// CleanGPUName turns a raw listing string into a marketing name:
//
//	"Advanced Micro Devices, Inc. [AMD/ATI] Navi 22 [Radeon RX 6700 XT] (rev c0)"
//	-> "AMD Radeon RX 6700 XT"
func CleanGPUName(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.LastIndex(s, "(rev "); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	cleaned, ok := siLastBracketed(s)
	if !ok {
		cleaned = siRemoveNoise(s)
	}
	cleaned = siVendorPrefix(cleaned, raw)
	return siCollapseSpaces(cleaned)
}

func siLastBracketed(s string) (string, bool) {
	start := strings.LastIndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	rest := s[start+1:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return "", false
	}
	inner := strings.TrimSpace(rest[:end])
	return inner, inner != ""
}

func siRemoveNoise(s string) string {
	for _, w := range corporateNoise {
		s = strings.ReplaceAll(s, w, "")
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "  ", " "))
}

func siVendorPrefix(cleaned, raw string) string {
	cleaned = strings.TrimSpace(cleaned)
	lc := strings.ToLower(cleaned)
	lr := strings.ToLower(raw)

	switch {
	case (strings.Contains(lr, "nvidia") || siContainsAny(lc, []string{"geforce", "rtx", "gtx"})) &&
		!strings.HasPrefix(lc, "nvidia"):
		return "NVIDIA " + cleaned
	case (strings.Contains(lr, "advanced micro devices") || siHasWord(lr, "ati") || siContainsAny(lc, []string{"radeon", "navi"})) &&
		!strings.HasPrefix(lc, "amd"):
		return "AMD " + cleaned
	case (strings.Contains(lr, "intel") || siContainsAny(lc, []string{"arc", "iris", "uhd", "hd graphics"})) &&
		!strings.HasPrefix(lc, "intel"):
		return "Intel " + cleaned
	}
	return cleaned
}

// siParseLspciMM extracts "vendor device" per display controller from
// `lspci -mm` output, whose quoted fields are class, vendor, device and the
// optional subsystem pair. The vendor is dropped when the device name
// already starts with it.
func siParseLspciMM(out string) []string {
	var gpus []string
	for _, line := range siNonEmptyLines(out) {
		parts := strings.Split(line, `"`)
		var fields []string
		for i := 1; i < len(parts); i += 2 {
			fields = append(fields, strings.TrimSpace(parts[i]))
		}
		if len(fields) < 3 {
			continue
		}
		class := strings.ToLower(fields[0])
		if !strings.Contains(class, "vga") && !strings.Contains(class, "3d") && !strings.Contains(class, "display") {
			continue
		}
		vendor, device := fields[1], fields[2]
		if device == "" || siGenericGPUName(device) {
			continue
		}
		if first, _, _ := strings.Cut(vendor, " "); first != "" &&
			strings.HasPrefix(strings.ToLower(device), strings.ToLower(first)) {
			vendor = ""
		}
		gpus = append(gpus, strings.TrimSpace(vendor+" "+device))
	}
	return gpus
}

// siParseWmicNames parses `wmic path win32_videocontroller get name`.
func siParseWmicNames(out string) []string {
	var names []string
	for _, line := range siNonEmptyLines(out) {
		if strings.EqualFold(line, "name") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// siParseChipsetModels collects "Chipset Model:" values from
// `system_profiler SPDisplaysDataType`.
func siParseChipsetModels(out string) []string {
	var names []string
	for _, line := range siNonEmptyLines(out) {
		if v, ok := strings.CutPrefix(line, "Chipset Model:"); ok {
			if v = strings.TrimSpace(v); v != "" {
				names = append(names, v)
			}
		}
	}
	return names
}

// siReadDRMName returns the first non-empty product name under
// <root>/card{0..7}/device.
func siReadDRMName(root string) string {
	for i := 0; i < 8; i++ {
		dev := filepath.Join(root, "card"+strconv.Itoa(i), "device")
		for _, f := range []string{"product_name", "model", "name"} {
			data, err := os.ReadFile(filepath.Join(dev, f))
			if err != nil {
				continue
			}
			if s := strings.TrimSpace(string(data)); s != "" {
				return s
			}
		}
	}
	return ""
}

// siGPUFromSensors picks a GPU name from thermal sensor labels, skipping
// labels that only describe a sensor.
func siGPUFromSensors(labels []string) string {
	skip := []string{"junction", "edge", "mem", "sensor", "fan", "temp", "power"}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		lower := strings.ToLower(label)
		if siContainsAny(lower, skip) {
			continue
		}
		if siContainsAny(lower, []string{"gpu", "nvidia", "radeon"}) && !siGenericGPUName(label) {
			return label
		}
	}
	return ""
}

func siGenericGPUName(s string) bool {
	lower := strings.ToLower(s)
	return lower == "" || lower == "gpu" ||
		strings.Contains(lower, "generic") || strings.Contains(lower, "unknown") ||
		len(lower) < 4
}

// siHasWord reports whether w appears in s as a whole word. "Corporation"
// must not count as "ati".
func siHasWord(s, w string) bool {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range words {
		if f == w {
			return true
		}
	}
	return false
}

func siAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
