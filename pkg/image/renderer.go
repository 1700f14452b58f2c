// Package image draws a raster logo in the terminal. Kitty, iTerm2 and
// Sixel output goes through go-termimg; every other terminal gets Unicode
// half blocks in 24-bit colour.
package image

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	"github.com/novafetch/novafetch/pkg/terminal"
)

// DefaultWidth is the logo width in cells when none is configured.
const DefaultWidth = 36

// ErrDisabled is returned when the terminal cannot show images at all.
var ErrDisabled = errors.New("image rendering is disabled (protocol=none)")

// Renderer turns images into terminal escape sequences.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
}

// NewRenderer returns a Renderer for the detected terminal.
func NewRenderer(caps terminal.Capabilities) *Renderer {
	return &Renderer{
		protocol: caps.Protocol,
		cellW:    caps.Size.CellW,
		cellH:    caps.Size.CellH,
	}
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Load decodes the image at path, honouring EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return img, nil
}

// RenderFile loads the image at path and renders it widthCells wide.
func (r *Renderer) RenderFile(path string, widthCells int) (string, error) {
	img, err := Load(path)
	if err != nil {
		return "", err
	}
	return r.Render(img, widthCells)
}

// Render converts img to escape sequences widthCells wide. The height in
// cells follows from the image aspect ratio and the cell pixel size.
func (r *Renderer) Render(img image.Image, widthCells int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image is nil")
	}
	if r.protocol == terminal.ProtocolNone {
		return "", ErrDisabled
	}
	if widthCells <= 0 {
		widthCells = DefaultWidth
	}
	b := img.Bounds()
	cols, rows := imgCellGrid(b.Dx(), b.Dy(), r.cellW, r.cellH, widthCells)

	switch r.protocol {
	case terminal.ProtocolKitty:
		return r.renderTermimg(img, termimg.Kitty, cols, rows)
	case terminal.ProtocolITerm2:
		return r.renderTermimg(img, termimg.ITerm2, cols, rows)
	case terminal.ProtocolSixel:
		return r.renderTermimg(img, termimg.Sixel, cols, rows)
	default:
		return renderHalfblocks(img, cols)
	}
}

// renderTermimg delegates to go-termimg for Kitty, iTerm2, and Sixel protocols.
func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, cols, rows int) (string, error) {
	ti := termimg.New(imgSharpen(img, imgSharpenDefault))
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	out, err := ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit).Render()
	if err != nil {
		return "", fmt.Errorf("render %v: %w", proto, err)
	}
	return out, nil
}

// renderHalfblocks renders using the upper half block U+2580: the top pixel
// is the foreground colour, the bottom pixel the background. Each cell
// covers one pixel column and two pixel rows. Transparent pixels show the
// terminal background.
func renderHalfblocks(img image.Image, cols int) (string, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return "", nil
	}
	// Cells are about twice as tall as wide, so two pixel rows per cell
	// keep pixels square.
	h := max(1, int(float64(cols)*float64(b.Dy())/float64(b.Dx())+0.5))
	px := imgSharpen(imgResize(img, cols, h), imgSharpenHalfblock)

	o := px.Bounds().Min
	var sb strings.Builder
	sb.Grow(cols * (h/2 + 1) * 30)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < cols; x++ {
			top := px.NRGBAAt(o.X+x, o.Y+y)
			bot := px.NRGBAAt(o.X+x, o.Y+y+1) // zero beyond the last row
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String(), nil
}
