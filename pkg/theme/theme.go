// Package theme colours labels, values and logos for the report and maps
// module keys to Nerd Font icons. All output degrades to plain text when
// colour is disabled, and to the 256-colour palette on terminals without
// true-colour support.
package theme

import (
	"strings"

	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/config"
)

// Colour depths understood by Manager.
const (
	DepthTrueColor = 24
	Depth256       = 8
)

// accent is the 256-colour index of tree glyphs and group headers.
const accent = 214

// Manager formats report text according to the theme settings.
type Manager struct {
	Theme     config.ThemeConfig
	NerdFonts bool
	NoColor   bool

	// Depth is DepthTrueColor or Depth256; zero means true colour.
	Depth int
}

// New returns a Manager for cfg.
func New(cfg *config.Config, noColor bool, depth int) *Manager {
	return &Manager{
		Theme:     cfg.Theme,
		NerdFonts: cfg.General.UseNerdFonts,
		NoColor:   noColor,
		Depth:     depth,
	}
}

// Gradient reports whether labels use the primary-to-secondary gradient.
func (m *Manager) Gradient() bool {
	return strings.EqualFold(strings.TrimSpace(m.Theme.Mode), "gradient")
}

// FormatLabel prefixes the key's icon when Nerd Fonts are enabled and
// colours the label with the gradient or the primary colour. Without colour
// the text is returned unchanged.
func (m *Manager) FormatLabel(key, text string) string {
	if m.NoColor {
		return text
	}
	if icon := Icon(key); m.NerdFonts && icon != "" {
		text = icon + " " + text
	}
	if m.Gradient() {
		return m.gradient(text, m.Theme.PrimaryColor, m.Theme.SecondaryColor)
	}
	return m.solid(text, m.Theme.PrimaryColor)
}

// FormatHeader colours a header value (user@host) like a label, without an
// icon.
func (m *Manager) FormatHeader(text string) string {
	if m.NoColor {
		return text
	}
	if m.Gradient() {
		return m.gradient(text, m.Theme.PrimaryColor, m.Theme.SecondaryColor)
	}
	return m.solid(text, m.Theme.PrimaryColor)
}

// FormatValue colours text with the text colour.
func (m *Manager) FormatValue(text string) string {
	if m.NoColor {
		return text
	}
	return m.solid(text, m.Theme.TextColor)
}

// Logo colours each art line. Gradient mode runs primary to secondary
// across every line; solid mode uses the logo's own colour.
func (m *Manager) Logo(lines []string, own components.RGB) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case m.NoColor || strings.TrimSpace(line) == "":
			out[i] = line
		case m.Gradient():
			out[i] = m.gradient(line, m.Theme.PrimaryColor, m.Theme.SecondaryColor)
		default:
			out[i] = m.solid(line, own)
		}
	}
	return out
}

// Accent wraps tree glyphs and group headers in the accent colour.
func (m *Manager) Accent(text string) string {
	if m.NoColor || text == "" {
		return text
	}
	return components.Fg256(accent) + text + components.Reset()
}

func (m *Manager) solid(text string, c components.RGB) string {
	if m.Depth == Depth256 {
		return components.Fg256(thTo256(c)) + text + components.Reset()
	}
	return components.Solid(text, c)
}

func (m *Manager) gradient(text string, start, end components.RGB) string {
	if m.Depth != Depth256 {
		return components.Gradient(text, start, end)
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		t := 1.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(components.Fg256(thTo256(components.Lerp(start, end, t))))
		b.WriteRune(r)
	}
	b.WriteString(components.Reset())
	return b.String()
}
