package io

import (
	"errors"
	"io"
	"strconv"
)

// Buffer is an in-memory console channel. Input is served to reads;
// everything written is appended to Output. Useful for tests and for
// embedding programs with prepared input.
type Buffer struct {
	Input  []byte // Bytes served to IN and GET.
	Output []byte // Bytes produced by OUT and PUT.

	readIndex int
}

var _ Channel = (*Buffer)(nil)

// Rewind restarts reading from the first input byte and discards any
// captured output.
func (buf *Buffer) Rewind() {
	buf.readIndex = 0
	buf.Output = nil
}

// isSpace reports scanf-style whitespace.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// ReadInt parses one decimal integer, skipping leading whitespace.
func (buf *Buffer) ReadInt() (value int32, err error) {
	for buf.readIndex < len(buf.Input) && isSpace(buf.Input[buf.readIndex]) {
		buf.readIndex++
	}

	start := buf.readIndex
	if buf.readIndex < len(buf.Input) {
		ch := buf.Input[buf.readIndex]
		if ch == '-' || ch == '+' {
			buf.readIndex++
		}
	}

	digits := 0
	for buf.readIndex < len(buf.Input) {
		ch := buf.Input[buf.readIndex]
		if ch < '0' || ch > '9' {
			break
		}
		digits++
		buf.readIndex++
	}

	if digits == 0 {
		buf.readIndex = start
		if start >= len(buf.Input) {
			err = io.EOF
			return
		}
		err = ErrNoInput
		return
	}

	v64, err := strconv.ParseInt(string(buf.Input[start:buf.readIndex]), 10, 32)
	if err != nil {
		err = errors.Join(ErrNoInput, err)
		return
	}

	value = int32(v64)
	return
}

// ReadByte reads one raw byte from the input.
func (buf *Buffer) ReadByte() (value byte, err error) {
	if buf.readIndex >= len(buf.Input) {
		err = io.EOF
		return
	}

	value = buf.Input[buf.readIndex]
	buf.readIndex++
	return
}

// WriteInt appends a decimal integer to the output.
func (buf *Buffer) WriteInt(value int32) (err error) {
	buf.Output = strconv.AppendInt(buf.Output, int64(value), 10)
	return
}

// WriteByte appends one raw byte to the output.
func (buf *Buffer) WriteByte(value byte) (err error) {
	buf.Output = append(buf.Output, value)
	return
}
