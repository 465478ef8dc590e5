// Package crt applies a CRT-style color shift and scanline effect to the contents of
// the Linux framebuffer, in place, in a single pass.
package crt

import (
	"github.com/juju/errors"

	"github.com/BeatGlow/crt/effect"
	"github.com/BeatGlow/crt/framebuffer"
	"github.com/BeatGlow/crt/pixel"
)

// DefaultDevice is the framebuffer device the effect is applied to.
const DefaultDevice = "/dev/fb0"

type screen interface {
	String() string
	Geometry() framebuffer.Geometry
	Buffer() *pixel.Buffer
	Close() error
}

func openFramebuffer(path string) (screen, error) {
	fb, err := framebuffer.Open(path)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// Run opens and maps the framebuffer at path, applies one effect pass and releases the
// device again. The device is released on every return path once it was opened.
func Run(path string, p effect.Params) error {
	return run(path, p, openFramebuffer)
}

func run(path string, p effect.Params, open func(string) (screen, error)) error {
	log := Logger()

	fb, err := open(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if err := fb.Close(); err != nil {
			log.Warn("framebuffer teardown failed", "device", path, "error", err)
		}
	}()

	g := fb.Geometry()
	log.Info("screen", "xres", g.Width, "yres", g.Height)
	log.Debug("framebuffer mapped",
		"device", fb.String(),
		"bpp", g.BitsPerPixel,
		"stride", g.Stride,
		"xoffset", g.XOffset,
		"yoffset", g.YOffset,
		"size", g.Size())

	if err = effect.Apply(fb.Buffer(), g, p, new(effect.State)); err != nil {
		return errors.Trace(err)
	}
	log.Debug("effect pass done", "pixels", g.Width*g.Height)
	return nil
}
