package ioctl

import (
	"fmt"
	"reflect"
	"runtime"

	"periph.io/x/host/v3/fs"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uint

// Framebuffer commands from <linux/fb.h>. These predate the _IOR encoding and carry
// no size or direction bits.
const (
	FBIOGetVScreenInfo Command = 0x4600
	FBIOGetFScreenInfo Command = 0x4602
)

var names = map[Command]string{
	FBIOGetVScreenInfo: "FBIOGET_VSCREENINFO",
	FBIOGetFScreenInfo: "FBIOGET_FSCREENINFO",
}

func (c Command) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read "
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uint(cmd))
}

// Do executes the ioctl call, ptr must be a pointer to the request structure.
func Do(dev fs.Ioctler, command Command, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		p = v.Pointer()
	}

	err := dev.Ioctl(uint(command), p)
	runtime.KeepAlive(ptr)
	if err != nil {
		return fmt.Errorf("ioctl %s failed: %w", command, err)
	}
	return nil
}
