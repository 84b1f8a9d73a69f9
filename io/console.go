package io

import (
	"bufio"
	"fmt"
	"io"
)

// Console provides console I/O over an io.Reader and io.Writer pair,
// typically stdin and stdout. A Console with a nil Input reads as
// end-of-stream; a Console with a nil Output rejects writes.
type Console struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Channel = (*Console)(nil)

// Rewind drops any buffered input state. The underlying streams are not
// seekable, so reading resumes from the current stream position.
func (con *Console) Rewind() {
	con.reader = nil
}

// buffered returns the buffered view of the input stream.
func (con *Console) buffered() *bufio.Reader {
	if con.reader == nil {
		con.reader = bufio.NewReader(con.Input)
	}

	return con.reader
}

// ReadInt parses one decimal integer from the input stream, skipping
// leading whitespace.
func (con *Console) ReadInt() (value int32, err error) {
	if con.Input == nil {
		err = io.EOF
		return
	}

	_, err = fmt.Fscan(con.buffered(), &value)
	return
}

// ReadByte reads one raw byte from the input stream.
func (con *Console) ReadByte() (value byte, err error) {
	if con.Input == nil {
		err = io.EOF
		return
	}

	return con.buffered().ReadByte()
}

// WriteInt writes a decimal integer to the output stream.
func (con *Console) WriteInt(value int32) (err error) {
	if con.Output == nil {
		return ErrNoOutput
	}

	_, err = fmt.Fprintf(con.Output, "%d", value)
	return
}

// WriteByte writes one raw byte to the output stream.
func (con *Console) WriteByte(value byte) (err error) {
	if con.Output == nil {
		return ErrNoOutput
	}

	_, err = con.Output.Write([]byte{value})
	return
}
