// Package effect implements a CRT-style color shift and scanline dimming pass over
// 32 bits per pixel framebuffer memory.
//
// The pass adds a fixed amount to one color channel of every pixel, rotating through
// red, green and blue from one pixel to the next, and subtracts from the alpha byte of
// every Scanline'th column. All arithmetic is done on raw bytes and wraps around.
package effect

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/BeatGlow/crt/framebuffer"
	"github.com/BeatGlow/crt/pixel"
)

// Effect constants.
const (
	ShiftRed    = 10  // Added to the red channel.
	ShiftGreen  = 10  // Added to the green channel.
	ShiftBlue   = 10  // Added to the blue channel.
	Scanline    = 2   // Column period of the dimmed scanlines.
	ScanlineDim = -50 // Added to the alpha channel of scanline columns.
)

// Params are the effect parameters.
type Params struct {
	ShiftRed    int
	ShiftGreen  int
	ShiftBlue   int
	Scanline    int
	ScanlineDim int
}

// DefaultParams are the effect constants.
var DefaultParams = Params{
	ShiftRed:    ShiftRed,
	ShiftGreen:  ShiftGreen,
	ShiftBlue:   ShiftBlue,
	Scanline:    Scanline,
	ScanlineDim: ScanlineDim,
}

// Validate the parameters.
func (p Params) Validate() error {
	if p.Scanline <= 0 {
		return errors.NotValidf("scanline period %d", p.Scanline)
	}
	return nil
}

func (p Params) shift(c Channel) byte {
	switch c {
	case Red:
		return byte(p.ShiftRed)
	case Green:
		return byte(p.ShiftGreen)
	default:
		return byte(p.ShiftBlue)
	}
}

// Channel is a color channel.
type Channel uint8

// Channels, in cursor order.
const (
	Red Channel = iota
	Green
	Blue
)

// AlphaIndex is the byte index of the alpha channel in a 32-bit pixel.
const AlphaIndex = 3

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel %d", uint8(c))
	}
}

// ByteIndex is the byte index of the channel in a 32-bit B, G, R, A pixel.
func (c Channel) ByteIndex() int {
	switch c {
	case Red:
		return 2
	case Green:
		return 1
	default:
		return 0
	}
}

// State is the channel cursor. It selects the channel of the next visited pixel and is
// shared by all rows of a pass; the zero State starts at Red.
type State struct {
	cursor Channel
}

// Channel is the channel the next pixel receives.
func (s *State) Channel() Channel {
	return s.cursor
}

// Next returns the current channel and advances the cursor.
func (s *State) Next() Channel {
	c := s.cursor
	s.cursor = (c + 1) % 3
	return c
}

// Apply runs one effect pass over the visible screen described by g. Screens that
// aren't 32 bits per pixel fail with a [framebuffer.UnsupportedFormatError], and no
// byte is modified unless the whole visible screen is addressable in buf.
func Apply(buf *pixel.Buffer, g framebuffer.Geometry, p Params, s *State) error {
	if g.BitsPerPixel != 32 {
		return &framebuffer.UnsupportedFormatError{BitsPerPixel: g.BitsPerPixel}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	if first, last := g.PixOffset(0, 0), g.PixOffset(g.Width-1, g.Height-1)+AlphaIndex; first < 0 || last >= buf.Len() {
		return errors.Annotatef(pixel.ErrBounds, "visible screen spans bytes %d-%d of %d", first, last, buf.Len())
	}
	if s == nil {
		s = new(State)
	}
	return apply32(buf, g, p, s)
}

func apply32(buf *pixel.Buffer, g framebuffer.Geometry, p Params, s *State) error {
	dim := byte(p.ScanlineDim)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			offset := g.PixOffset(x, y)

			c := s.Next()
			if err := buf.Add(offset+c.ByteIndex(), p.shift(c)); err != nil {
				return errors.Annotatef(err, "pixel (%d,%d)", x, y)
			}

			if x%p.Scanline == 0 {
				if err := buf.Add(offset+AlphaIndex, dim); err != nil {
					return errors.Annotatef(err, "pixel (%d,%d)", x, y)
				}
			}
		}
	}
	return nil
}
