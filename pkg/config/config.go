// Package config loads and persists the novafetch configuration file.
//
// The file lives at $XDG_CONFIG_HOME/novafetch/config.toml (or the platform
// user config directory). A missing or unparsable file is replaced with the
// defaults on first use; missing keys are always filled from DefaultConfig.
package config

import (
	"strings"

	"github.com/novafetch/novafetch/pkg/components"
)

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	Layout  []string      `toml:"layout" yaml:"layout"`
	ASCII   ASCIIConfig   `toml:"ascii" yaml:"ascii"`
}

// GeneralConfig holds presentation switches.
type GeneralConfig struct {
	Separator     string `toml:"separator" yaml:"separator"`
	UseNerdFonts  bool   `toml:"use_nerd_fonts" yaml:"use_nerd_fonts"`
	AlignValues   bool   `toml:"align_values" yaml:"align_values"`
	UnitType      string `toml:"unit_type" yaml:"unit_type"` // "standard", "iec", "si"
	ShowMemoryBar bool   `toml:"show_memory_bar" yaml:"show_memory_bar"`
	ShowCPUBar    bool   `toml:"show_cpu_bar" yaml:"show_cpu_bar"`
	ShowDiskBar   bool   `toml:"show_disk_bar" yaml:"show_disk_bar"`
	ImagePath     string `toml:"image_path" yaml:"image_path"`
	ImageWidth    int    `toml:"image_width" yaml:"image_width"` // cells, 0 = DefaultImageWidth
	LayoutMode    string `toml:"layout_mode" yaml:"layout_mode"` // "flat", "tree"
	BarStyle      string `toml:"bar_style" yaml:"bar_style"`     // "blocks", "dots", "classic"
	Margin        int    `toml:"margin" yaml:"margin"`
}

// ThemeConfig holds label and value colors.
type ThemeConfig struct {
	PrimaryColor   components.RGB `toml:"primary_color" yaml:"primary_color"`
	SecondaryColor components.RGB `toml:"secondary_color" yaml:"secondary_color"`
	TextColor      components.RGB `toml:"text_color" yaml:"text_color"`
	Mode           string         `toml:"mode" yaml:"mode"` // "gradient" or solid
	Preset         string         `toml:"preset" yaml:"preset"`
}

// ASCIIConfig controls the text-art logo.
type ASCIIConfig struct {
	DistroOverride string `toml:"distro_override" yaml:"distro_override"`
	PrintASCII     bool   `toml:"print_ascii" yaml:"print_ascii"`
}

// Layout modes.
const (
	LayoutFlat = "flat"
	LayoutTree = "tree"
)

// DefaultImageWidth is the image logo width in cells when none is set.
const DefaultImageWidth = 36

// DefaultMargin is the gap between the logo and info columns.
const DefaultMargin = 4

// DefaultLayout is the module order used when the file does not set one.
var DefaultLayout = []string{
	"user_host",
	"os",
	"kernel",
	"uptime",
	"shell",
	"de",
	"cpu",
	"gpu",
	"memory",
	"disk",
	"terminal",
	"terminal_font",
	"packages",
	"resolution",
	"swap",
	"os_age",
	"theme",
	"media",
	"local_ip",
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Separator:     "  ",
			UseNerdFonts:  true,
			AlignValues:   true,
			UnitType:      components.UnitStandard,
			ShowMemoryBar: true,
			ShowCPUBar:    true,
			ShowDiskBar:   true,
			LayoutMode:    LayoutFlat,
			BarStyle:      "blocks",
			Margin:        DefaultMargin,
		},
		Theme: ThemeConfig{
			PrimaryColor:   components.RGB{59, 130, 246},
			SecondaryColor: components.RGB{147, 51, 234},
			TextColor:      components.RGB{255, 255, 255},
			Mode:           "gradient",
		},
		Layout: append([]string(nil), DefaultLayout...),
		ASCII: ASCIIConfig{
			PrintASCII: true,
		},
	}
}

// ImageCells returns the configured image width, or DefaultImageWidth.
func (c *Config) ImageCells() int {
	if c.General.ImageWidth > 0 {
		return c.General.ImageWidth
	}
	return DefaultImageWidth
}

// MarginCells returns the configured column gap. Negative values fall back
// to DefaultMargin.
func (c *Config) MarginCells() int {
	if c.General.Margin < 0 {
		return DefaultMargin
	}
	return c.General.Margin
}

// HasModule reports whether key appears in the layout.
func (c *Config) HasModule(key string) bool {
	for _, k := range c.Layout {
		if strings.TrimSpace(k) == key {
			return true
		}
	}
	return false
}
