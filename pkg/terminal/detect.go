// Package terminal identifies the terminal emulator from the environment,
// picks the graphics protocol used for image logos and reports the window
// size. Detection only inspects environment variables and ioctls; it never
// writes query sequences to the terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermKonsole
	TermFoot
	TermAlacritty
	TermGNOME // VTE-based: GNOME Terminal, Tilix
	TermTmux
	TermScreen
	TermVSCode
	TermGeneric
)

type feature uint8

const (
	featKitty feature = 1 << iota
	featSixel
	featITerm2
	featTrueColor
)

var terminals = [...]struct {
	name  string
	feats feature
}{
	TermUnknown:   {"unknown", 0},
	TermGhostty:   {"ghostty", featKitty | featTrueColor},
	TermKitty:     {"kitty", featKitty | featTrueColor},
	TermWezTerm:   {"wezterm", featKitty | featSixel | featITerm2 | featTrueColor},
	TermITerm2:    {"iterm2", featITerm2 | featTrueColor},
	TermKonsole:   {"konsole", featKitty | featTrueColor},
	TermFoot:      {"foot", featSixel | featTrueColor},
	TermAlacritty: {"alacritty", featTrueColor},
	TermGNOME:     {"vte", featTrueColor},
	TermTmux:      {"tmux", 0},
	TermScreen:    {"screen", 0},
	TermVSCode:    {"vscode", featTrueColor},
	TermGeneric:   {"generic", 0},
}

func (t Terminal) has(f feature) bool {
	return t >= 0 && int(t) < len(terminals) && terminals[t].feats&f != 0
}

func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminals) {
		return terminals[t].name
	}
	return "unknown"
}

// SupportsKittyGraphics reports whether the terminal speaks the Kitty
// graphics protocol.
func (t Terminal) SupportsKittyGraphics() bool { return t.has(featKitty) }

func (t Terminal) SupportsSixel() bool { return t.has(featSixel) }

// SupportsITerm2Images reports support for iTerm2 inline images.
func (t Terminal) SupportsITerm2Images() bool { return t.has(featITerm2) }

func (t Terminal) SupportsTrueColor() bool { return t.has(featTrueColor) }

// termPrograms maps lower-cased TERM_PROGRAM values.
var termPrograms = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// envMarkers are emulator-specific variables, checked in order after
// TERM_PROGRAM and TERM. Multiplexers come late so the inner terminal
// wins when it is visible.
var envMarkers = []struct {
	key  string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"KONSOLE_VERSION", TermKonsole},
	{"VTE_VERSION", TermGNOME},
	{"TMUX", TermTmux},
	{"STY", TermScreen},
}

// Detect identifies the terminal emulator from TERM_PROGRAM, then TERM,
// then emulator-specific variables. LC_TERMINAL catches iTerm2 over SSH.
func Detect() Terminal {
	if t, ok := termPrograms[strings.ToLower(os.Getenv("TERM_PROGRAM"))]; ok {
		return t
	}
	if t := fromTERM(os.Getenv("TERM")); t != TermUnknown {
		return t
	}
	for _, m := range envMarkers {
		if os.Getenv(m.key) != "" {
			return m.term
		}
	}
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	return TermGeneric
}

func fromTERM(term string) Terminal {
	switch {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case term == "foot" || strings.HasPrefix(term, "foot-"):
		return TermFoot
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
		return TermScreen
	}
	return TermUnknown
}
