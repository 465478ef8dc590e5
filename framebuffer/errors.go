package framebuffer

import (
	"fmt"

	"github.com/juju/errors"
)

// Errors
const (
	ErrClosed       = errors.ConstError("framebuffer: device is closed")
	ErrNotSupported = errors.ConstError("framebuffer: not supported")
)

// Query is a screen information request.
type Query int

// Queries
const (
	FixedInfo Query = iota
	VariableInfo
)

func (q Query) String() string {
	switch q {
	case FixedInfo:
		return "fixed screen information"
	case VariableInfo:
		return "variable screen information"
	default:
		return fmt.Sprintf("screen information query %d", int(q))
	}
}

// DeviceOpenError is returned when the framebuffer device can't be opened.
type DeviceOpenError struct {
	Path string
	Err  error
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf("framebuffer: unable to open the framebuffer device %s: %v", e.Path, e.Err)
}

func (e *DeviceOpenError) Unwrap() error { return e.Err }

// GeometryQueryError is returned when a screen information ioctl fails.
type GeometryQueryError struct {
	Query Query
	Err   error
}

func (e *GeometryQueryError) Error() string {
	return fmt.Sprintf("framebuffer: unable to read %s: %v", e.Query, e.Err)
}

func (e *GeometryQueryError) Unwrap() error { return e.Err }

// MappingError is returned when the framebuffer can't be mapped to memory.
type MappingError struct {
	Size int
	Err  error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("framebuffer: unable to map %d bytes of the framebuffer device to memory: %v", e.Size, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// UnsupportedFormatError is returned for pixel formats that can't be processed.
type UnsupportedFormatError struct {
	BitsPerPixel int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("framebuffer: %d bit screens are currently unsupported", e.BitsPerPixel)
}
