package ioctl

import (
	"errors"
	"syscall"
	"testing"
	"unsafe"
)

type fakeIoctler struct {
	op   uint
	data uintptr
	err  error
}

func (f *fakeIoctler) Ioctl(op uint, data uintptr) error {
	f.op, f.data = op, data
	return f.err
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		Command Command
		Want    string
	}{
		{FBIOGetVScreenInfo, "FBIOGET_VSCREENINFO"},
		{FBIOGetFScreenInfo, "FBIOGET_FSCREENINFO"},
		{Command(0x4606), "ioctl (0 bytes) 0x4606"},
		{Command(2<<30 | 1<<16 | 0x6b01), "ioctl read  (1 bytes) 0x6b01"},
	}
	for _, test := range tests {
		t.Run(test.Want, func(it *testing.T) {
			if v := test.Command.String(); v != test.Want {
				it.Errorf("expected %q, got %q", test.Want, v)
			}
		})
	}
}

func TestDo(t *testing.T) {
	var (
		dev   = new(fakeIoctler)
		value uint32
	)
	if err := Do(dev, FBIOGetVScreenInfo, &value); err != nil {
		t.Fatal(err)
	}
	if dev.op != uint(FBIOGetVScreenInfo) {
		t.Errorf("expected op %#04x, got %#04x", uint(FBIOGetVScreenInfo), dev.op)
	}
	if dev.data != uintptr(unsafe.Pointer(&value)) {
		t.Errorf("expected data to point at the request structure")
	}
}

func TestDoError(t *testing.T) {
	dev := &fakeIoctler{err: syscall.ENOTTY}
	err := Do(dev, FBIOGetFScreenInfo, new(uint32))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("expected error to wrap ENOTTY, got %v", err)
	}
}
