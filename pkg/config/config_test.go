package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/novafetch/novafetch/pkg/components"
)

// --- Sample data constants ---

const cfgPartialTOML = `
layout = ["cpu", "memory"]

[general]
separator = " :: "
unit_type = "iec"
`

const cfgPresetTOML = `
[theme]
preset = "gruvbox"
secondary_color = [1, 2, 3]
`

const cfgYAML = `
general:
  separator: " -> "
  show_cpu_bar: false
theme:
  preset: nord
layout:
  - os
  - kernel
`

// --- Defaults ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.Separator != "  " {
		t.Errorf("Separator = %q, want %q", cfg.General.Separator, "  ")
	}
	if cfg.General.LayoutMode != LayoutFlat {
		t.Errorf("LayoutMode = %q, want %q", cfg.General.LayoutMode, LayoutFlat)
	}
	if !cfg.ASCII.PrintASCII {
		t.Error("PrintASCII = false, want true")
	}
	if !reflect.DeepEqual(cfg.Layout, DefaultLayout) {
		t.Errorf("Layout = %v, want %v", cfg.Layout, DefaultLayout)
	}
	cfg.Layout[0] = "changed"
	if DefaultLayout[0] == "changed" {
		t.Error("DefaultConfig shares its layout slice with DefaultLayout")
	}
}

func TestImageCellsAndMargin(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ImageCells(); got != DefaultImageWidth {
		t.Errorf("ImageCells() = %d, want %d", got, DefaultImageWidth)
	}
	cfg.General.ImageWidth = 20
	if got := cfg.ImageCells(); got != 20 {
		t.Errorf("ImageCells() = %d, want 20", got)
	}
	cfg.General.Margin = -1
	if got := cfg.MarginCells(); got != DefaultMargin {
		t.Errorf("MarginCells() = %d, want %d", got, DefaultMargin)
	}
	cfg.General.Margin = 0
	if got := cfg.MarginCells(); got != 0 {
		t.Errorf("MarginCells() = %d, want 0", got)
	}
}

func TestHasModule(t *testing.T) {
	cfg := &Config{Layout: []string{" memory ", "cpu"}}
	if !cfg.HasModule("memory") {
		t.Error("HasModule(memory) = false, want true")
	}
	if cfg.HasModule("swap") {
		t.Error("HasModule(swap) = true, want false")
	}
}

// --- Decoding ---

func TestRoundTrip(t *testing.T) {
	want := DefaultConfig()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(want); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := LoadFromReader(&buf)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestMissingSectionsAreDefaulted(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(cfgPartialTOML))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.General.Separator != " :: " {
		t.Errorf("Separator = %q, want %q", cfg.General.Separator, " :: ")
	}
	if cfg.General.UnitType != "iec" {
		t.Errorf("UnitType = %q, want iec", cfg.General.UnitType)
	}
	if !cfg.General.ShowMemoryBar {
		t.Error("ShowMemoryBar not defaulted to true")
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}
	if !reflect.DeepEqual(cfg.Layout, []string{"cpu", "memory"}) {
		t.Errorf("Layout = %v, want [cpu memory]", cfg.Layout)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	in := "bogus = 1\n[general]\nmystery = \"x\"\n[extra]\nkey = true\n"
	if _, err := LoadFromReader(strings.NewReader(in)); err != nil {
		t.Fatalf("LoadFromReader with unknown keys: %v", err)
	}
}

func TestEmptyLayoutIsKept(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("layout = []\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if len(cfg.Layout) != 0 {
		t.Errorf("Layout = %v, want empty", cfg.Layout)
	}
}

func TestPresetKeepsExplicitColors(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(cfgPresetTOML))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	gruv, _ := ThemePreset("gruvbox")
	if cfg.Theme.PrimaryColor != gruv.PrimaryColor {
		t.Errorf("PrimaryColor = %v, want preset %v", cfg.Theme.PrimaryColor, gruv.PrimaryColor)
	}
	if cfg.Theme.SecondaryColor != (components.RGB{1, 2, 3}) {
		t.Errorf("SecondaryColor = %v, want explicit [1 2 3]", cfg.Theme.SecondaryColor)
	}
	if cfg.Theme.TextColor != gruv.TextColor {
		t.Errorf("TextColor = %v, want preset %v", cfg.Theme.TextColor, gruv.TextColor)
	}
}

func TestUnknownPresetIgnored(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("[theme]\npreset = \"neon\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Theme.PrimaryColor != DefaultConfig().Theme.PrimaryColor {
		t.Errorf("PrimaryColor = %v, want default", cfg.Theme.PrimaryColor)
	}
}

func TestThemePresetNames(t *testing.T) {
	want := []string{"catppuccin", "default", "dracula", "gruvbox", "nord", "tokyonight"}
	if got := ThemePresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ThemePresetNames() = %v, want %v", got, want)
	}
	if _, ok := ThemePreset("Tokyo-Night"); !ok {
		t.Error("ThemePreset(Tokyo-Night) not found")
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(cfgYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if cfg.General.Separator != " -> " {
		t.Errorf("Separator = %q, want %q", cfg.General.Separator, " -> ")
	}
	if cfg.General.ShowCPUBar {
		t.Error("ShowCPUBar = true, want false")
	}
	if !cfg.General.ShowDiskBar {
		t.Error("ShowDiskBar not defaulted to true")
	}
	nord, _ := ThemePreset("nord")
	if cfg.Theme.PrimaryColor != nord.PrimaryColor {
		t.Errorf("PrimaryColor = %v, want nord %v", cfg.Theme.PrimaryColor, nord.PrimaryColor)
	}
	if !reflect.DeepEqual(cfg.Layout, []string{"os", "kernel"}) {
		t.Errorf("Layout = %v, want [os kernel]", cfg.Layout)
	}
}

// --- Load / Save ---

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "novafetch", "config.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load on missing file did not return defaults")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !reflect.DeepEqual(again, cfg) {
		t.Errorf("reloaded config differs from written defaults")
	}
}

func TestLoadReplacesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\nseparator = "), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Separator != "  " {
		t.Errorf("Separator = %q, want default", cfg.General.Separator)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromReader(bytes.NewReader(data)); err != nil {
		t.Errorf("malformed file was not replaced: %v", err)
	}
}

func TestLoadMalformedYAMLIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	bad := []byte("general: [unclosed\n")
	if err := os.WriteFile(path, bad, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("malformed YAML did not yield defaults")
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, bad) {
		t.Error("malformed YAML file was rewritten")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.toml" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want [config.toml]", names)
	}
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "novafetch", "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
