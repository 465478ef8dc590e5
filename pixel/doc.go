// Package pixel implements byte-addressable pixel buffers for memory-mapped displays.
//
// The buffers are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, and expose raw byte arithmetic for effects that operate
// on individual color channels.
package pixel
