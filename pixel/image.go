package pixel

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/juju/errors"
)

// ErrBounds is returned for byte offsets outside of the buffer.
const ErrBounds = errors.ConstError("pixel: offset out of buffer bounds")

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Len is the size of the buffer in bytes.
func (p *Buffer) Len() int {
	return len(p.Pix)
}

// Add delta to the byte at offset. The sum wraps around modulo 256.
func (p *Buffer) Add(offset int, delta byte) error {
	if offset < 0 || offset >= len(p.Pix) {
		return errors.Annotatef(ErrBounds, "offset %d, size %d", offset, len(p.Pix))
	}
	p.Pix[offset] += delta
	return nil
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// BGRAImage is a 32-bit per pixel image with B, G, R, A byte order, as exposed by most
// Linux framebuffers.
//
// Pixel offsets are computed from absolute coordinates, so a Buffer whose Rect does
// not start at the origin addresses a viewport inside a larger virtual screen.
type BGRAImage struct {
	Buffer
}

func NewBGRAImage(w, h int) *BGRAImage {
	return &BGRAImage{
		Buffer: makeBuffer(w, h, w*4, w*h*4),
	}
}

func (p *BGRAImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *BGRAImage) PixOffset(x, y int) int {
	return x*4 + y*p.Stride
}

func (p *BGRAImage) valid(x, y int) (int, bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0, false
	}
	i := p.PixOffset(x, y)
	return i, i >= 0 && i+4 <= len(p.Pix)
}

func (p *BGRAImage) At(x, y int) color.Color {
	i, ok := p.valid(x, y)
	if !ok {
		return color.Transparent
	}
	s := p.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[2], G: s[1], B: s[0], A: s[3]}
}

func (p *BGRAImage) Set(x, y int, c color.Color) {
	i, ok := p.valid(x, y)
	if !ok {
		return
	}
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := p.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = v.B, v.G, v.R, v.A
}

func (p *BGRAImage) Fill(c color.Color) {
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			if i, ok := p.valid(x, y); ok {
				s := p.Pix[i : i+4 : i+4]
				s[0], s[1], s[2], s[3] = v.B, v.G, v.R, v.A
			}
		}
	}
}
