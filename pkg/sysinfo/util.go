package sysinfo

import (
	"strconv"
	"strings"
)

// siParseFloat parses a string as float64, returning 0 on error.
func siParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// siCollapseSpaces joins the whitespace-separated fields of s with single
// spaces.
func siCollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// siUnquote strips one pair of surrounding quote characters q.
func siUnquote(s string, q byte) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
