package terminal

import "os"

// Capabilities summarizes what the current terminal can display.
type Capabilities struct {
	Term      Terminal
	Protocol  GraphicsProtocol
	Size      Size
	TrueColor bool
	SSH       bool
}

// DetectCapabilities runs terminal, protocol and size detection.
func DetectCapabilities() Capabilities {
	term := Detect()

	// COLORTERM covers well-configured terminals we do not know by name.
	trueColor := term.SupportsTrueColor()
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	return Capabilities{
		Term:      term,
		Protocol:  SelectProtocol(term),
		Size:      GetSize(),
		TrueColor: trueColor,
		SSH:       isSSH(),
	}
}
