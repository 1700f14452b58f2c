package sysinfo

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// maxParentHops bounds the walk up the process tree.
const maxParentHops = 20

// FontUnknown is reported when the monospace font cannot be queried.
const FontUnknown = "Unknown (Terminal-specific)"

var terminalNames = []string{
	"terminal",
	"alacritty",
	"kitty",
	"konsole",
	"gnome-terminal",
	"xfce4-terminal",
	"urxvt",
	"rxvt",
	"wezterm",
	"foot",
	"wayst",
	"hyper",
	"ghostty",
	"tilix",
}

// TerminalName returns the terminal emulator name from the environment or,
// failing that, from the first ancestor process that looks like one.
func TerminalName(ctx context.Context) string {
	if name := siTerminalFromEnv(os.Getenv); name != "" {
		return name
	}
	if name := siTerminalFromParents(ctx, int32(os.Getpid())); name != "" {
		return name
	}
	return Dash
}

func siTerminalFromEnv(getenv func(string) string) string {
	if v := getenv("TERM_PROGRAM"); v != "" {
		return v
	}
	if getenv("ALACRITTY_LOG") != "" {
		return "Alacritty"
	}
	if getenv("KITTY_PID") != "" {
		return "Kitty"
	}
	return ""
}

func siTerminalFromParents(ctx context.Context, pid int32) string {
	for i := 0; i < maxParentHops && pid > 0; i++ {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return ""
		}
		if name, err := p.NameWithContext(ctx); err == nil && siLooksLikeTerminal(name) {
			return siCleanTerminalName(name)
		}
		ppid, err := p.PpidWithContext(ctx)
		if err != nil || ppid == pid {
			return ""
		}
		pid = ppid
	}
	return ""
}

func siLooksLikeTerminal(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return lower == "st" || strings.HasPrefix(lower, "st ") || siContainsAny(lower, terminalNames)
}

// siCleanTerminalName trims a trailing "-" left by some process titles.
func siCleanTerminalName(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return Dash
	}
	return strings.TrimSuffix(s, "-")
}

// TerminalFont returns the GNOME monospace font name.
func TerminalFont(ctx context.Context) string {
	out, err := siRunCmd(ctx, "gsettings", "get", "org.gnome.desktop.interface", "monospace-font-name")
	if err != nil {
		return FontUnknown
	}
	if font := siParseGSettingsString(out); font != "" {
		return font
	}
	return FontUnknown
}

// siParseGSettingsString strips the single quotes gsettings puts around
// string values.
func siParseGSettingsString(out string) string {
	return strings.Trim(strings.TrimSpace(out), "'")
}
