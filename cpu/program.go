package cpu

import (
	"encoding/binary"
	"iter"
)

// Statement is one assembled source line: where it came from, the words
// it expanded to, and the memory words it generated.
type Statement struct {
	LineNo    int      // Source line number, counted from 1.
	Ip        int      // Word index of the first generated word.
	Words     []string // Source words, after equate and macro expansion.
	Codes     []int32  // Generated memory words.
	LinkLabel string   // Jump target label, resolved in the link pass.
}

// Program is an assembled listing.
type Program struct {
	Statements []Statement
}

// Debug is the source mapping of a single word index.
type Debug struct {
	*Statement
	Index int
}

// Debug returns the statement covering the word at index ip.
func (prog *Program) Debug(ip int32) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(ip) >= st.Ip && int(ip) < st.Ip+len(st.Codes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(ip) - st.Ip,
			}
			break
		}
	}

	return
}

// Codes returns an iterator over all generated words, keyed by word
// index.
func (prog *Program) Codes() iter.Seq2[int32, int32] {
	return func(yield func(ip int32, word int32) bool) {
		for _, st := range prog.Statements {
			ip := int32(st.Ip)
			for n, word := range st.Codes {
				if !yield(ip+int32(n), word) {
					return
				}
			}
		}
	}
}

// Words returns the generated words as a flat memory image.
func (prog *Program) Words() (words []int32) {
	for _, st := range prog.Statements {
		words = append(words, st.Codes...)
	}

	return
}

// Binary renders the program in the loadable binary format, each word as
// four bytes, least significant first.
func (prog *Program) Binary() (bins []byte) {
	for _, word := range prog.Words() {
		bins = binary.LittleEndian.AppendUint32(bins, uint32(word))
	}

	return
}
