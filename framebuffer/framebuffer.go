// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// is opened and mapped into memory with the [Open] call; the returned [Device] exposes
// the mapped bytes as a [pixel.Buffer] and releases them on [Device.Close].
//
// Writes to the buffer land directly in the device memory, there is no flush.
package framebuffer
