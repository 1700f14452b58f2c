//go:build linux || freebsd || openbsd || netbsd

package sysinfo

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisMetadataKey = "org.mpris.MediaPlayer2.Player.Metadata"
)

// Media returns the track of the first MPRIS player on the session bus.
func Media(ctx context.Context) (string, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("connecting session bus: %w", err)
	}
	defer conn.Close()

	var names []string
	if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return "", fmt.Errorf("listing bus names: %w", err)
	}
	player, ok := siFirstPlayer(names)
	if !ok {
		return "", ErrNoData
	}

	v, err := conn.Object(player, mprisPath).GetProperty(mprisMetadataKey)
	if err != nil {
		return "", fmt.Errorf("reading %s metadata: %w", player, err)
	}
	md, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return "", fmt.Errorf("unexpected metadata type %T", v.Value())
	}
	artist, title := siMediaFields(md)
	return FormatMedia(artist, title), nil
}

// siMediaFields extracts the first artist and the title from MPRIS
// metadata.
func siMediaFields(md map[string]dbus.Variant) (artist, title string) {
	if v, ok := md["xesam:artist"]; ok {
		switch a := v.Value().(type) {
		case []string:
			if len(a) > 0 {
				artist = a[0]
			}
		case string:
			artist = a
		}
	}
	if v, ok := md["xesam:title"]; ok {
		title, _ = v.Value().(string)
	}
	return artist, title
}
