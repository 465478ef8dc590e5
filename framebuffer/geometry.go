package framebuffer

import (
	"image"

	"github.com/juju/errors"
)

// Geometry describes the visible screen of a framebuffer device.
type Geometry struct {
	// Width is the horizontal resolution in pixels.
	Width int

	// Height is the vertical resolution in pixels.
	Height int

	// BitsPerPixel is the pixel storage width.
	BitsPerPixel int

	// Stride is the number of bytes between the start of two scanlines.
	Stride int

	// XOffset and YOffset are the origin of the visible screen in the virtual screen.
	XOffset, YOffset int
}

// BytesPerPixel is the pixel storage width in bytes.
func (g Geometry) BytesPerPixel() int {
	return g.BitsPerPixel / 8
}

// Size is the number of bytes mapped for this geometry.
func (g Geometry) Size() int {
	return g.Width * g.Height * g.BitsPerPixel / 8
}

// PixOffset is the offset of the first byte of the visible pixel at (x, y).
func (g Geometry) PixOffset(x, y int) int {
	return (x+g.XOffset)*g.BytesPerPixel() + (y+g.YOffset)*g.Stride
}

// Bounds is the visible screen in virtual screen coordinates.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(g.XOffset, g.YOffset, g.XOffset+g.Width, g.YOffset+g.Height)
}

// Validate checks that every visible pixel can be addressed inside Size bytes.
func (g Geometry) Validate() error {
	if g.BitsPerPixel <= 0 || g.BitsPerPixel%8 != 0 {
		return &UnsupportedFormatError{BitsPerPixel: g.BitsPerPixel}
	}
	if g.Width <= 0 || g.Height <= 0 {
		return errors.NotValidf("screen size %dx%d", g.Width, g.Height)
	}
	if g.XOffset < 0 || g.YOffset < 0 {
		return errors.NotValidf("screen offset (%d,%d)", g.XOffset, g.YOffset)
	}
	if row := g.Width * g.BytesPerPixel(); g.Stride < row {
		return errors.NotValidf("stride of %d bytes for %d byte rows", g.Stride, row)
	}
	if last := g.PixOffset(g.Width-1, g.Height-1) + g.BytesPerPixel() - 1; last >= g.Size() {
		return errors.NotValidf("visible screen ending at byte %d in %d bytes", last, g.Size())
	}
	return nil
}
