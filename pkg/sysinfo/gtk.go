package sysinfo

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// GTKTheme holds the desktop theme settings shown by the theme module.
type GTKTheme struct {
	Theme string
	Icons string
	Font  string
}

// ReadGTKTheme reads ~/.config/gtk-3.0/settings.ini, else the gtk-4.0 one.
// GTK_THEME fills a missing theme name. Missing values are Unknown.
func ReadGTKTheme(home string, getenv func(string) string) GTKTheme {
	t := GTKTheme{Theme: Unknown, Icons: Unknown, Font: Unknown}
	if home != "" {
		for _, dir := range []string{"gtk-3.0", "gtk-4.0"} {
			f, err := os.Open(filepath.Join(home, ".config", dir, "settings.ini"))
			if err != nil {
				continue
			}
			siParseGTKSettings(f, &t)
			f.Close()
			break
		}
	}
	if t.Theme == Unknown {
		if env := strings.TrimSpace(getenv("GTK_THEME")); env != "" {
			t.Theme = env
		}
	}
	return t
}

func siParseGTKSettings(r io.Reader, t *GTKTheme) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		v = siUnquote(v, '"')
		switch strings.TrimSpace(k) {
		case "gtk-theme-name":
			t.Theme = v
		case "gtk-icon-theme-name":
			t.Icons = v
		case "gtk-font-name":
			t.Font = v
		}
	}
}
