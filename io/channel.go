// Package io provides console channel implementations for the μCPU emulator.
// A channel is the device the IN, GET, OUT, and PUT instructions talk to:
// decimal integers and raw bytes in, decimal text and raw bytes out. It
// includes a stream-backed Console and an in-memory Buffer.
package io

// Channel defines the interface for console devices in the μCPU system.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// ReadInt parses one decimal integer from the channel input.
	ReadInt() (value int32, err error)
	// ReadByte reads one raw byte from the channel input.
	// End of input is reported as io.EOF.
	ReadByte() (value byte, err error)
	// WriteInt writes a decimal integer to the channel output.
	WriteInt(value int32) error
	// WriteByte writes one raw byte to the channel output.
	WriteByte(value byte) error
}
