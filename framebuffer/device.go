package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/juju/errors"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/crt/pixel"
)

var _ display.Drawer = (*Device)(nil)

// Device is an open and memory mapped framebuffer.
type Device struct {
	path   string
	id     string
	f      io.Closer
	geom   Geometry
	buf    pixel.Buffer
	unmap  func([]byte) error
	closed bool
}

func newDevice(path, id string, f io.Closer, geom Geometry, pix []byte, unmap func([]byte) error) (*Device, error) {
	if len(pix) != geom.Size() {
		return nil, &MappingError{Size: geom.Size(), Err: errors.Errorf("mapped %d bytes", len(pix))}
	}
	return &Device{
		path: path,
		id:   id,
		f:    f,
		geom: geom,
		buf: pixel.Buffer{
			Rect:   geom.Bounds(),
			Pix:    pix,
			Stride: geom.Stride,
		},
		unmap: unmap,
	}, nil
}

// Geometry of the visible screen.
func (d *Device) Geometry() Geometry {
	return d.geom
}

// Buffer is the mapped device memory. It is empty after Close.
func (d *Device) Buffer() *pixel.Buffer {
	return &d.buf
}

func (d *Device) String() string {
	if d.id == "" {
		return fmt.Sprintf("framebuffer %s %dx%d %dbpp", d.path, d.geom.Width, d.geom.Height, d.geom.BitsPerPixel)
	}
	return fmt.Sprintf("framebuffer %s (%s) %dx%d %dbpp", d.path, d.id, d.geom.Width, d.geom.Height, d.geom.BitsPerPixel)
}

// Halt is a no-op, the framebuffer has no pending operations.
func (d *Device) Halt() error {
	return nil
}

// ColorModel is the model used by Draw.
func (d *Device) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds of the visible screen, with its origin at (0, 0).
func (d *Device) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.geom.Width, d.geom.Height)
}

// Draw src into the visible screen. Only 32 bpp screens are supported.
func (d *Device) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.closed {
		return ErrClosed
	}
	if d.geom.BitsPerPixel != 32 {
		return &UnsupportedFormatError{BitsPerPixel: d.geom.BitsPerPixel}
	}
	origin := image.Pt(d.geom.XOffset, d.geom.YOffset)
	dst := &pixel.BGRAImage{Buffer: d.buf}
	draw.Draw(dst, r.Add(origin), src, sp, draw.Src)
	return nil
}

// Close unmaps the framebuffer memory and closes the device. Only the first call
// releases anything, later calls return ErrClosed.
func (d *Device) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true

	var unmapErr error
	if d.unmap != nil && d.buf.Pix != nil {
		if err := d.unmap(d.buf.Pix); err != nil {
			unmapErr = errors.Annotate(err, "framebuffer: munmap")
		}
	}
	d.buf.Pix = nil

	if err := d.f.Close(); err != nil {
		return errors.Annotate(err, "framebuffer: close")
	}
	return unmapErr
}
