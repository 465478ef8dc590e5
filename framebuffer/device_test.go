package framebuffer

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"syscall"
	"testing"
)

type fakeFile struct {
	closed int
	err    error
}

func (f *fakeFile) Close() error {
	f.closed++
	return f.err
}

type fakeMapping struct {
	unmapped int
	err      error
}

func (m *fakeMapping) unmap(b []byte) error {
	m.unmapped++
	return m.err
}

func testDevice(t *testing.T, g Geometry) (*Device, *fakeFile, *fakeMapping) {
	t.Helper()
	var (
		f = new(fakeFile)
		m = new(fakeMapping)
	)
	d, err := newDevice("/dev/fb0", "test fb", f, g, make([]byte, g.Size()), m.unmap)
	if err != nil {
		t.Fatal(err)
	}
	return d, f, m
}

func TestNewDeviceSize(t *testing.T) {
	g := Geometry{Width: 4, Height: 1, BitsPerPixel: 32, Stride: 16}
	for _, size := range []int{0, 15, 17, 32} {
		_, err := newDevice("/dev/fb0", "", new(fakeFile), g, make([]byte, size), nil)
		var mapErr *MappingError
		if !errors.As(err, &mapErr) {
			t.Errorf("size %d: expected MappingError, got %v", size, err)
		}
	}
}

func TestDeviceBuffer(t *testing.T) {
	g := Geometry{Width: 4, Height: 2, BitsPerPixel: 32, Stride: 16}
	d, _, _ := testDevice(t, g)
	if v := d.Geometry(); v != g {
		t.Errorf("expected geometry %+v, got %+v", g, v)
	}
	b := d.Buffer()
	if v := b.Len(); v != g.Size() {
		t.Errorf("expected buffer of %d bytes, got %d", g.Size(), v)
	}
	if b.Stride != g.Stride {
		t.Errorf("expected stride %d, got %d", g.Stride, b.Stride)
	}
	if !b.Bounds().Eq(g.Bounds()) {
		t.Errorf("expected bounds %s, got %s", g.Bounds(), b.Bounds())
	}
	if err := b.Add(g.PixOffset(3, 1)+3, 1); err != nil {
		t.Errorf("expected last byte to be addressable: %v", err)
	}
}

func TestDeviceClose(t *testing.T) {
	d, f, m := testDevice(t, Geometry{Width: 4, Height: 1, BitsPerPixel: 32, Stride: 16})
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if f.closed != 1 || m.unmapped != 1 {
		t.Errorf("expected one close and one unmap, got %d and %d", f.closed, m.unmapped)
	}
	if err := d.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if f.closed != 1 || m.unmapped != 1 {
		t.Errorf("expected second close to release nothing, got %d closes and %d unmaps", f.closed, m.unmapped)
	}
	if v := d.Buffer().Len(); v != 0 {
		t.Errorf("expected empty buffer after close, got %d bytes", v)
	}
	if err := d.Draw(d.Bounds(), image.Black, image.Point{}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected draw after close to return ErrClosed, got %v", err)
	}
}

func TestDeviceCloseErrors(t *testing.T) {
	t.Run("unmap", func(it *testing.T) {
		d, f, m := testDevice(it, Geometry{Width: 1, Height: 1, BitsPerPixel: 32, Stride: 4})
		m.err = syscall.EINVAL
		err := d.Close()
		if !errors.Is(err, syscall.EINVAL) {
			it.Errorf("expected unmap error, got %v", err)
		}
		if f.closed != 1 {
			it.Errorf("expected device to be closed after failed unmap")
		}
	})
	t.Run("close", func(it *testing.T) {
		d, f, m := testDevice(it, Geometry{Width: 1, Height: 1, BitsPerPixel: 32, Stride: 4})
		f.err = syscall.EBADF
		m.err = syscall.EINVAL
		if err := d.Close(); !errors.Is(err, syscall.EBADF) {
			it.Errorf("expected close error, got %v", err)
		}
	})
}

func TestDeviceDraw(t *testing.T) {
	d, _, _ := testDevice(t, Geometry{Width: 3, Height: 1, BitsPerPixel: 32, Stride: 12})
	if v := d.ColorModel(); v != color.NRGBAModel {
		t.Errorf("expected NRGBA color model, got %v", v)
	}
	src := image.NewUniform(color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff})
	if err := d.Draw(image.Rect(1, 0, 2, 1), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 0, 0xcc, 0xbb, 0xaa, 0xff, 0, 0, 0, 0}
	for i, v := range want {
		if d.Buffer().Pix[i] != v {
			t.Fatalf("expected %v, got %v", want, d.Buffer().Pix)
		}
	}
	if err := d.Halt(); err != nil {
		t.Errorf("expected halt to be a no-op, got %v", err)
	}
}

func TestDeviceDrawUnsupported(t *testing.T) {
	d, _, _ := testDevice(t, Geometry{Width: 2, Height: 1, BitsPerPixel: 16, Stride: 4})
	err := d.Draw(d.Bounds(), image.White, image.Point{})
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) || unsupported.BitsPerPixel != 16 {
		t.Errorf("expected 16 bit UnsupportedFormatError, got %v", err)
	}
	for _, v := range d.Buffer().Pix {
		if v != 0 {
			t.Fatalf("expected buffer to be untouched, got %v", d.Buffer().Pix)
		}
	}
}

func TestDeviceString(t *testing.T) {
	d, _, _ := testDevice(t, Geometry{Width: 4, Height: 1, BitsPerPixel: 32, Stride: 16})
	if v := d.String(); !strings.Contains(v, "/dev/fb0") || !strings.Contains(v, "test fb") || !strings.Contains(v, "4x1") {
		t.Errorf("unexpected device description %q", v)
	}
}
