package terminal

import "os"

// GraphicsProtocol identifies how an image logo is drawn.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // No graphics support
	ProtocolKitty                              // Kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images protocol
	ProtocolSixel                              // Sixel graphics protocol
	ProtocolHalfblocks                         // Unicode half-block characters with ANSI color
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the human-readable name of the graphics protocol.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// SelectProtocol returns the best graphics protocol for term:
//   - Kitty graphics where supported
//   - iTerm2 inline images on iTerm2
//   - Sixel on foot
//   - half blocks everywhere else
//
// Over SSH every pixel protocol degrades to half blocks.
func SelectProtocol(term Terminal) GraphicsProtocol {
	proto := selectBaseProtocol(term)
	if isSSH() && proto != ProtocolHalfblocks {
		return ProtocolHalfblocks
	}
	return proto
}

func selectBaseProtocol(term Terminal) GraphicsProtocol {
	switch {
	case term.SupportsKittyGraphics():
		return ProtocolKitty
	case term.SupportsITerm2Images():
		return ProtocolITerm2
	case term.SupportsSixel():
		return ProtocolSixel
	default:
		return ProtocolHalfblocks
	}
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
