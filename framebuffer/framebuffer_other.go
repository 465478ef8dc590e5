//go:build !linux

package framebuffer

// Open is only supported on Linux.
func Open(name string) (*Device, error) {
	return nil, &DeviceOpenError{Path: name, Err: ErrNotSupported}
}
