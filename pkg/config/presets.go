package config

import (
	"sort"
	"strings"

	"github.com/novafetch/novafetch/pkg/components"
)

// themePresets maps preset names to their label and value colors. Primary
// and secondary are the gradient endpoints.
var themePresets = map[string]ThemeConfig{
	"default": {
		PrimaryColor:   components.RGB{59, 130, 246},
		SecondaryColor: components.RGB{147, 51, 234},
		TextColor:      components.RGB{255, 255, 255},
	},
	"gruvbox": {
		PrimaryColor:   components.RGB{254, 128, 25},
		SecondaryColor: components.RGB{250, 189, 47},
		TextColor:      components.RGB{235, 219, 178},
	},
	"nord": {
		PrimaryColor:   components.RGB{136, 192, 208},
		SecondaryColor: components.RGB{94, 129, 172},
		TextColor:      components.RGB{216, 222, 233},
	},
	"catppuccin": {
		PrimaryColor:   components.RGB{203, 166, 247},
		SecondaryColor: components.RGB{245, 194, 231},
		TextColor:      components.RGB{205, 214, 244},
	},
	"dracula": {
		PrimaryColor:   components.RGB{189, 147, 249},
		SecondaryColor: components.RGB{255, 121, 198},
		TextColor:      components.RGB{248, 248, 242},
	},
	"tokyonight": {
		PrimaryColor:   components.RGB{122, 162, 247},
		SecondaryColor: components.RGB{187, 154, 247},
		TextColor:      components.RGB{192, 202, 245},
	},
}

// ThemePreset returns the colors of a named preset. Names are matched
// case-insensitively with spaces, dashes and underscores ignored.
func ThemePreset(name string) (ThemeConfig, bool) {
	t, ok := themePresets[presetKey(name)]
	return t, ok
}

// ThemePresetNames returns the sorted preset names.
func ThemePresetNames() []string {
	names := make([]string, 0, len(themePresets))
	for n := range themePresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// applyPreset copies preset colors into t for every color key the file did
// not set explicitly. isSet reports whether theme.<key> was present.
func applyPreset(t *ThemeConfig, isSet func(key string) bool) {
	if t.Preset == "" {
		return
	}
	p, ok := ThemePreset(t.Preset)
	if !ok {
		return
	}
	if !isSet("primary_color") {
		t.PrimaryColor = p.PrimaryColor
	}
	if !isSet("secondary_color") {
		t.SecondaryColor = p.SecondaryColor
	}
	if !isSet("text_color") {
		t.TextColor = p.TextColor
	}
}

func presetKey(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(name)))
}
