package image

import (
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Sharpening sigmas applied after scaling. Half blocks have the lowest
// effective resolution and get the stronger pass.
const (
	imgSharpenDefault   = 0.3
	imgSharpenHalfblock = 0.5
)

// imgResize scales img to exactly w x h pixels with Catmull-Rom
// resampling. An image already at that size is returned unchanged.
func imgResize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// imgSharpen returns a sharpened copy of img anchored at the origin. A
// non-positive sigma only copies.
func imgSharpen(img image.Image, sigma float64) *image.NRGBA {
	return imaging.Sharpen(img, sigma)
}
