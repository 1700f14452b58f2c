package sysinfo

import "strings"

// mprisPrefix is the well-known bus name prefix of MPRIS media players.
const mprisPrefix = "org.mpris.MediaPlayer2."

// FormatMedia renders the now-playing line. Empty fields become Unknown.
func FormatMedia(artist, title string) string {
	if strings.TrimSpace(artist) == "" {
		artist = Unknown
	}
	if strings.TrimSpace(title) == "" {
		title = Unknown
	}
	return "🎵 " + artist + " - " + title
}

// siFirstPlayer returns the first MPRIS bus name in names.
func siFirstPlayer(names []string) (string, bool) {
	for _, n := range names {
		if strings.HasPrefix(n, mprisPrefix) {
			return n, true
		}
	}
	return "", false
}
