// Package logo holds the distribution text-art catalogue. Art lives in
// art/*.txt and is embedded at build time; a slug is resolved by exact
// match, then by family substring, then to the Tux fallback.
package logo

import (
	"embed"
	"sort"
	"strings"

	"github.com/novafetch/novafetch/pkg/components"
)

//go:embed art/*.txt
var artFS embed.FS

// Primary colours, xterm defaults.
var (
	Red         = components.RGB{205, 0, 0}
	Green       = components.RGB{0, 205, 0}
	Yellow      = components.RGB{205, 205, 0}
	Blue        = components.RGB{0, 0, 238}
	Magenta     = components.RGB{205, 0, 205}
	Cyan        = components.RGB{0, 205, 205}
	White       = components.RGB{229, 229, 229}
	BrightBlue  = components.RGB{92, 92, 255}
	BrightWhite = components.RGB{255, 255, 255}
)

// FallbackName is the catalogue key of the placeholder logo.
const FallbackName = "fallback"

// Logo is one catalogue entry.
type Logo struct {
	Name  string
	Lines []string
	Color components.RGB
}

type entry struct {
	art   string // file under art/ without extension
	color components.RGB
}

var catalogue = map[string]entry{
	"arch":         {"arch", Cyan},
	"debian":       {"debian", Red},
	"ubuntu":       {"ubuntu", Red},
	"fedora":       {"fedora", Blue},
	"opensuse":     {"opensuse", Green},
	"gentoo":       {"gentoo", Magenta},
	"slackware":    {"slackware", Blue},
	"rhel":         {"rhel", Red},
	"mint":         {"mint", Green},
	"manjaro":      {"manjaro", Green},
	"endeavouros":  {"endeavouros", Magenta},
	"pop_os":       {"pop_os", Cyan},
	"mx_linux":     {"mx_linux", White},
	"zorin":        {"zorin", Blue},
	"elementary":   {"elementary", White},
	"kali":         {"kali", Blue},
	"parrot":       {"parrot", Cyan},
	"garuda":       {"garuda", Red},
	"nobara":       {"nobara", White},
	"almalinux":    {"almalinux", Yellow},
	"rocky":        {"rocky", Green},
	"centos":       {"centos", Yellow},
	"alpine":       {"alpine", Blue},
	"oracle_linux": {"oracle_linux", Red},
	"nixos":        {"nixos", Blue},
	"void":         {"void", Green},
	"solus":        {"solus", Blue},
	"puppy":        {"puppy", White},
	"freebsd":      {"freebsd", Red},
	"raspbian":     {"raspbian", Red},
	"windows10":    {"windows10", BrightBlue},
	"windows11":    {"windows11", BrightBlue},
	"macos":        {"macos", BrightWhite},
	FallbackName:   {"fallback", Cyan},
}

// aliases map os-release IDs and common spellings onto catalogue keys.
var aliases = map[string]string{
	"archlinux":           "arch",
	"linuxmint":           "mint",
	"opensuse-tumbleweed": "opensuse",
	"opensuse-leap":       "opensuse",
	"sles":                "opensuse",
	"redhat":              "rhel",
	"pop":                 "pop_os",
	"popos":               "pop_os",
	"pop!_os":             "pop_os",
	"mx":                  "mx_linux",
	"mxlinux":             "mx_linux",
	"ol":                  "oracle_linux",
	"oracle":              "oracle_linux",
	"oraclelinux":         "oracle_linux",
	"alma":                "almalinux",
	"rockylinux":          "rocky",
	"endeavour":           "endeavouros",
	"elementaryos":        "elementary",
	"zorinos":             "zorin",
	"parrotos":            "parrot",
	"garudalinux":         "garuda",
	"voidlinux":           "void",
	"raspberrypios":       "raspbian",
	"windows":             "windows10",
	"windows8":            "windows10",
	"darwin":              "macos",
	"apple":               "macos",
	"mac":                 "macos",
	"osx":                 "macos",
}

// families is tried in order when neither the catalogue nor the aliases
// know a slug; the first key contained in the slug wins.
var families = []struct{ sub, key string }{
	{"manjaro", "manjaro"},
	{"endeavour", "endeavouros"},
	{"garuda", "garuda"},
	{"arch", "arch"},
	{"kubuntu", "ubuntu"},
	{"xubuntu", "ubuntu"},
	{"lubuntu", "ubuntu"},
	{"ubuntu", "ubuntu"},
	{"mint", "mint"},
	{"suse", "opensuse"},
	{"centos", "centos"},
	{"rocky", "rocky"},
	{"alma", "almalinux"},
	{"rhel", "rhel"},
	{"redhat", "rhel"},
	{"fedora", "fedora"},
	{"debian", "debian"},
	{"gentoo", "gentoo"},
	{"windows", "windows10"},
	{"darwin", "macos"},
	{"mac", "macos"},
}

// Normalize lowercases s and removes spaces and double quotes.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", `"`, "").Replace(s)
}

// Resolve returns the catalogue key for slug, applying aliases and the
// family fallback. Unknown slugs resolve to FallbackName.
func Resolve(slug string) string {
	s := Normalize(slug)
	if _, ok := catalogue[s]; ok {
		return s
	}
	if k, ok := aliases[s]; ok {
		return k
	}
	if s == "" {
		return FallbackName
	}
	for _, f := range families {
		if strings.Contains(s, f.sub) {
			return f.key
		}
	}
	return FallbackName
}

// Get returns the logo for slug. It never fails: unknown slugs yield the
// cyan Tux fallback.
func Get(slug string) Logo {
	key := Resolve(slug)
	e := catalogue[key]
	data, err := artFS.ReadFile("art/" + e.art + ".txt")
	if err != nil {
		key, e = FallbackName, catalogue[FallbackName]
		data, _ = artFS.ReadFile("art/" + e.art + ".txt")
	}
	return Logo{Name: key, Lines: Lines(string(data)), Color: e.color}
}

// Names returns the sorted catalogue keys.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for k := range catalogue {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lines splits raw art into lines after trimming the leading and trailing
// newline runs. Inner whitespace, blank inner lines included, is kept.
func Lines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.Trim(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
