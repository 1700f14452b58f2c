// Package shell identifies the user's login shell and its version.
package shell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Unknown is reported when no shell can be identified.
const Unknown = "unknown"

// Info describes the detected shell.
type Info struct {
	Name    string // binary name, e.g. "zsh"
	Path    string // path used to query the version
	Version string // e.g. "5.9", empty when unknown
}

// String returns "name version", or the bare name when the version is
// unknown.
func (i Info) String() string {
	if i.Name == "" {
		return Unknown
	}
	if i.Version == "" {
		return i.Name
	}
	return i.Name + " " + i.Version
}

// Detect returns the current shell. It checks in order:
//
//  1. $SHELL environment variable
//  2. the parent process name
//
// The version comes from running "<shell> --version".
func Detect(ctx context.Context) Info {
	info := shDetectFromEnv()
	if info.Name == "" {
		info = shDetectFromParent(ctx)
	}
	if info.Name == "" {
		return Info{Name: Unknown}
	}
	if info.Path != "" {
		info.Version = Version(ctx, info.Path)
	}
	return info
}

// shDetectFromEnv reads the $SHELL environment variable.
func shDetectFromEnv() Info {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return Info{}
	}
	return Info{Name: filepath.Base(shellPath), Path: shellPath}
}

// shDetectFromParent identifies a known shell in the parent process.
func shDetectFromParent(ctx context.Context) Info {
	ppid := os.Getppid()
	if ppid <= 0 {
		return Info{}
	}
	name := shParseShellName(shParentName(ctx, int32(ppid)))
	if name == "" {
		return Info{}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		path = ""
	}
	return Info{Name: name, Path: path}
}

func shParentName(ctx context.Context, ppid int32) string {
	p, err := process.NewProcessWithContext(ctx, ppid)
	if err != nil {
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return filepath.Base(name)
}

// shParseShellName maps a process name (e.g. "-zsh", "ksh93") to a known
// shell binary name. Returns empty string if unrecognized.
func shParseShellName(name string) string {
	// Strip leading dash for login shells (e.g., "-zsh").
	name = strings.TrimPrefix(strings.TrimSpace(name), "-")
	name = strings.ToLower(name)

	switch name {
	case "bash", "zsh", "fish", "dash", "tcsh", "csh", "nu", "elvish", "xonsh", "pwsh", "sh":
		return name
	case "ksh", "ksh93", "mksh", "pdksh":
		return "ksh"
	case "nushell":
		return "nu"
	default:
		return ""
	}
}

// Version runs "<path> --version" and extracts the version number. It
// returns "" when the shell fails or prints nothing version-like.
func Version(ctx context.Context, path string) string {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return ""
	}
	return ParseVersion(string(out))
}

// ParseVersion returns the leading digits and dots of the first token on
// the first line that starts with a digit:
//
//	"GNU bash, version 5.2.21(1)-release (x86_64-pc-linux-gnu)" -> "5.2.21"
//	"zsh 5.9 (x86_64-pc-linux-gnu)"                             -> "5.9"
func ParseVersion(out string) string {
	first, _, _ := strings.Cut(out, "\n")
	for _, tok := range strings.Fields(first) {
		if tok[0] < '0' || tok[0] > '9' {
			continue
		}
		end := strings.IndexFunc(tok, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		})
		if end < 0 {
			end = len(tok)
		}
		return strings.TrimRight(tok[:end], ".")
	}
	return ""
}
