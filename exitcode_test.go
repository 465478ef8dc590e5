package crt

import (
	"syscall"
	"testing"

	"github.com/juju/errors"

	"github.com/BeatGlow/crt/framebuffer"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		Name string
		Err  error
		Want int
	}{
		{"ok", nil, 0},
		{"open", &framebuffer.DeviceOpenError{Path: DefaultDevice, Err: syscall.ENOENT}, 1},
		{"fixed-info", &framebuffer.GeometryQueryError{Query: framebuffer.FixedInfo, Err: syscall.EINVAL}, 2},
		{"variable-info", &framebuffer.GeometryQueryError{Query: framebuffer.VariableInfo, Err: syscall.EINVAL}, 3},
		{"mapping", &framebuffer.MappingError{Size: 16, Err: syscall.ENOMEM}, 4},
		{"24bpp", &framebuffer.UnsupportedFormatError{BitsPerPixel: 24}, 5},
		{"16bpp", &framebuffer.UnsupportedFormatError{BitsPerPixel: 16}, 6},
		{"15bpp", &framebuffer.UnsupportedFormatError{BitsPerPixel: 15}, 5},
		{"not-supported", &framebuffer.DeviceOpenError{Path: DefaultDevice, Err: framebuffer.ErrNotSupported}, 1},
		{"traced", errors.Trace(&framebuffer.MappingError{Size: 16, Err: syscall.ENOMEM}), 4},
		{"annotated", errors.Annotate(&framebuffer.GeometryQueryError{Query: framebuffer.VariableInfo, Err: syscall.EIO}, "run"), 3},
		{"other", errors.New("something else"), 1},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := ExitCode(test.Err); v != test.Want {
				it.Errorf("expected exit code %d, got %d", test.Want, v)
			}
		})
	}
}
