package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/logo"
)

// --- Helpers ---

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

// --- Arguments ---

func TestUnknownFlagFails(t *testing.T) {
	if _, err := execute(t, "--frobnicate"); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestPositionalArgumentFails(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Error("positional argument accepted")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "novafetch "+version) {
		t.Errorf("--version output = %q", out)
	}
}

// --- End to end ---

func TestLogoOnlyNoColor(t *testing.T) {
	path := writeConfig(t, "layout = []\n")
	out, err := execute(t, "--config", path, "--logo", "arch", "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	art := logo.Get("arch").Lines
	width := components.MaxWidth(art)
	var want strings.Builder
	for _, line := range art {
		want.WriteString(components.PadRight(line, width) + "    \n")
	}
	if out != want.String() {
		t.Errorf("output =\n%s\nwant\n%s", out, want.String())
	}
}

func TestJSONOutput(t *testing.T) {
	path := writeConfig(t, "layout = [\"kernel\", \"bogus\"]\n")
	out, err := execute(t, "--config", path, "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(out), &obj); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if _, ok := obj["Kernel"]; !ok || len(obj) != 1 {
		t.Errorf("JSON = %v, want only Kernel", obj)
	}
}

func TestNoASCIIPrintsInfoOnly(t *testing.T) {
	path := writeConfig(t, "layout = [\"kernel\"]\n[ascii]\nprint_ascii = false\n[general]\nseparator = \": \"\n")
	out, err := execute(t, "--config", path, "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "Kernel: ") || strings.Count(out, "\n") != 1 {
		t.Errorf("output = %q, want one Kernel line", out)
	}
}

func TestImageFailureFallsBackToASCII(t *testing.T) {
	path := writeConfig(t, "layout = []\n[general]\nimage_path = \"/nonexistent/logo.png\"\n")
	out, err := execute(t, "--config", path, "--logo", "debian", "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := strings.Count(out, "\n"), len(logo.Get("debian").Lines); got != want {
		t.Errorf("printed %d lines, want the %d debian art lines", got, want)
	}
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novafetch", "config.toml")
	if _, err := execute(t, "--config", path, "--json"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

// --- Helpers under test ---

func TestLogoSlugPrecedence(t *testing.T) {
	detect := func() string { return "fedora" }
	none := func() string { return "" }
	tests := []struct {
		name, flag, override string
		detect               func() string
		want                 string
	}{
		{"flag wins", "arch", "ubuntu", detect, "arch"},
		{"override next", "", "ubuntu", detect, "ubuntu"},
		{"detected", "  ", "", detect, "fedora"},
		{"fallback", "", "", none, logo.FallbackName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logoSlug(tt.flag, tt.override, tt.detect); got != tt.want {
				t.Errorf("logoSlug = %q, want %q", got, tt.want)
			}
		})
	}
}
