package crt

import (
	"github.com/juju/errors"

	"github.com/BeatGlow/crt/framebuffer"
)

// Process exit codes, one per failure stage.
const (
	ExitOK            = 0
	ExitDeviceOpen    = 1
	ExitFixedInfo     = 2
	ExitVariableInfo  = 3
	ExitMapping       = 4
	ExitUnsupported24 = 5 // Also used for unsupported depths other than 16 bits.
	ExitUnsupported16 = 6
)

// ExitCode maps an error returned by Run to the process exit code. Errors outside of
// the framebuffer error kinds map to ExitDeviceOpen.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		queryErr       *framebuffer.GeometryQueryError
		mappingErr     *framebuffer.MappingError
		unsupportedErr *framebuffer.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &queryErr):
		if queryErr.Query == framebuffer.VariableInfo {
			return ExitVariableInfo
		}
		return ExitFixedInfo
	case errors.As(err, &mappingErr):
		return ExitMapping
	case errors.As(err, &unsupportedErr):
		if unsupportedErr.BitsPerPixel == 16 {
			return ExitUnsupported16
		}
		return ExitUnsupported24
	default:
		return ExitDeviceOpen
	}
}
