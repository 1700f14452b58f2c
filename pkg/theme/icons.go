package theme

// icons maps module keys to Nerd Font glyphs.
var icons = map[string]string{
	"user_host":     "",
	"os":            "",
	"kernel":        "",
	"uptime":        "",
	"shell":         "",
	"de":            "",
	"cpu":           "",
	"gpu":           "",
	"memory":        "",
	"disk":          "",
	"terminal":      "",
	"terminal_font": "",
	"packages":      "",
	"resolution":    "",
	"swap":          "",
	"os_age":        "",
	"media":         "",
	"local_ip":      "",
	"theme":         "",
	"battery":       "",
}

// Icon returns the glyph for key, or "" when the key has none.
func Icon(key string) string {
	return icons[key]
}
