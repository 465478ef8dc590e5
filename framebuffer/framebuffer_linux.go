package framebuffer

import (
	"os"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
	"periph.io/x/host/v3/fs"
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x], and map
// its visible screen into memory.
func Open(name string) (*Device, error) {
	f, err := fs.Open(name, os.O_RDWR)
	if err != nil {
		return nil, &DeviceOpenError{Path: name, Err: err}
	}

	fix, v, err := queryScreenInfo(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	geom := makeGeometry(&fix, &v)
	if err = geom.Validate(); err != nil {
		_ = f.Close()
		var unsupported *UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		return nil, &MappingError{Size: geom.Size(), Err: err}
	}

	// Map pixel buffer.
	size := geom.Size()
	pix, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, &MappingError{Size: size, Err: err}
	}

	d, err := newDevice(name, fix.id(), f, geom, pix, unix.Munmap)
	if err != nil {
		_ = unix.Munmap(pix)
		_ = f.Close()
		return nil, err
	}
	return d, nil
}
