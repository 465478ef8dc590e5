package framebuffer

import (
	"bytes"

	"periph.io/x/host/v3/fs"

	"github.com/BeatGlow/crt/internal/ioctl"
)

// fixScreenInfo is struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // FB_CAP_
	Reserved     [2]uint16 // Reserved for future compatibility
}

func (info *fixScreenInfo) id() string {
	if i := bytes.IndexByte(info.ID[:], 0); i >= 0 {
		return string(info.ID[:i])
	}
	return string(info.ID[:])
}

type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo is struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func queryScreenInfo(dev fs.Ioctler) (fix fixScreenInfo, v varScreenInfo, err error) {
	if err = ioctl.Do(dev, ioctl.FBIOGetFScreenInfo, &fix); err != nil {
		return fix, v, &GeometryQueryError{Query: FixedInfo, Err: err}
	}
	if err = ioctl.Do(dev, ioctl.FBIOGetVScreenInfo, &v); err != nil {
		return fix, v, &GeometryQueryError{Query: VariableInfo, Err: err}
	}
	return fix, v, nil
}

func makeGeometry(fix *fixScreenInfo, v *varScreenInfo) Geometry {
	return Geometry{
		Width:        int(v.Xres),
		Height:       int(v.Yres),
		BitsPerPixel: int(v.BitsPerPixel),
		Stride:       int(fix.LineLength),
		XOffset:      int(v.Xoffset),
		YOffset:      int(v.Yoffset),
	}
}

// QueryGeometry reads the fixed and variable screen information of an open framebuffer
// device. The fixed information is requested first.
func QueryGeometry(dev fs.Ioctler) (Geometry, error) {
	fix, v, err := queryScreenInfo(dev)
	if err != nil {
		return Geometry{}, err
	}
	return makeGeometry(&fix, &v), nil
}
