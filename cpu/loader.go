// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"encoding/binary"
	"io"
)

// BLOCK_WORDS is the granularity of memory buffer growth, in 32 bit words.
const BLOCK_WORDS = 4096 / 4

// LoadMemory reads a binary program into a fresh memory buffer, and
// appends a zero filled stack region of stackCapacity words.
//
// The binary format is a flat sequence of 32 bit words, least significant
// byte first. The buffer is sized in BLOCK_WORDS increments, growing while
// the program and stack together overflow it, and any space not covered by
// the program is zero filled. stackBottom is the index of the last word of
// the buffer, where the stack begins.
func LoadMemory(program io.Reader, stackCapacity int) (memory []int32, stackBottom int32, err error) {
	if stackCapacity < 0 {
		err = ErrStackCapacity
		return
	}

	reader := bufio.NewReader(program)

	var words []int32
	var bytes [4]byte
	for {
		_, err = io.ReadFull(reader, bytes[:])
		if err == io.EOF {
			err = nil
			break
		}
		if err == io.ErrUnexpectedEOF {
			// A trailing partial word means a damaged image.
			err = ErrTruncatedProgram
			return
		}
		if err != nil {
			return
		}
		words = append(words, int32(binary.LittleEndian.Uint32(bytes[:])))
	}

	size := BLOCK_WORDS
	for len(words) > size {
		size += BLOCK_WORDS
	}
	for len(words)+stackCapacity > size {
		size += BLOCK_WORDS
	}

	memory = make([]int32, size)
	copy(memory, words)
	stackBottom = int32(len(memory) - 1)

	return
}
