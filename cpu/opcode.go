package cpu

import (
	"fmt"
	"iter"
)

// Opcode is the numeric code of an instruction. The encoding mixes two
// numeric domains: the core operations are hex-assigned, and the
// compare/jump family decimal. Values are load-bearing; programs are
// distributed as flat binaries.
type Opcode uint32

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0x00) // NOP
	OP_HALT  = Opcode(0x01) // HALT
	OP_ADD   = Opcode(0x02) // ADD
	OP_SUB   = Opcode(0x03) // SUB
	OP_MUL   = Opcode(0x04) // MUL
	OP_DIV   = Opcode(0x05) // DIV
	OP_INC   = Opcode(0x06) // INC
	OP_DEC   = Opcode(0x07) // DEC
	OP_LOOP  = Opcode(0x08) // LOOP
	OP_MOVR  = Opcode(0x09) // MOVR
	OP_LOAD  = Opcode(0x0a) // LOAD
	OP_STORE = Opcode(0x0b) // STORE
	OP_IN    = Opcode(0x0c) // IN
	OP_GET   = Opcode(0x0d) // GET
	OP_OUT   = Opcode(0x0e) // OUT
	OP_PUT   = Opcode(0x0f) // PUT
	OP_SWAP  = Opcode(0x10) // SWAP
	OP_PUSH  = Opcode(0x11) // PUSH
	OP_POP   = Opcode(0x12) // POP
	OP_CMP   = Opcode(19)   // CMP
	OP_JMP   = Opcode(20)   // JMP
	OP_JZ    = Opcode(21)   // JZ
	OP_JNZ   = Opcode(22)   // JNZ
	OP_JGT   = Opcode(23)   // JGT
	OP_CALL  = Opcode(0x18) // CALL
	OP_RET   = Opcode(0x19) // RET
)

// OperandKind describes how an instruction interprets one operand word.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER = OperandKind(0) // register
	OPERAND_VALUE    = OperandKind(1) // value
	OPERAND_ADDRESS  = OperandKind(2) // address
	OPERAND_RETURN   = OperandKind(3) // return
)

// signatures lists the operand words each instruction carries, in order.
// OPERAND_RETURN words are synthesized by the assembler, not written in
// source.
var signatures = map[Opcode][]OperandKind{
	OP_NOP:   {},
	OP_HALT:  {},
	OP_ADD:   {OPERAND_REGISTER},
	OP_SUB:   {OPERAND_REGISTER},
	OP_MUL:   {OPERAND_REGISTER},
	OP_DIV:   {OPERAND_REGISTER},
	OP_INC:   {OPERAND_REGISTER},
	OP_DEC:   {OPERAND_REGISTER},
	OP_LOOP:  {OPERAND_ADDRESS},
	OP_MOVR:  {OPERAND_REGISTER, OPERAND_VALUE},
	OP_LOAD:  {OPERAND_REGISTER, OPERAND_VALUE},
	OP_STORE: {OPERAND_REGISTER, OPERAND_VALUE},
	OP_IN:    {OPERAND_REGISTER},
	OP_GET:   {OPERAND_REGISTER},
	OP_OUT:   {OPERAND_REGISTER},
	OP_PUT:   {OPERAND_REGISTER},
	OP_SWAP:  {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_PUSH:  {OPERAND_REGISTER},
	OP_POP:   {OPERAND_REGISTER},
	OP_CMP:   {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_JMP:   {OPERAND_ADDRESS},
	OP_JZ:    {OPERAND_ADDRESS},
	OP_JNZ:   {OPERAND_ADDRESS},
	OP_JGT:   {OPERAND_ADDRESS},
	OP_CALL:  {OPERAND_ADDRESS, OPERAND_RETURN},
	OP_RET:   {},
}

// Signature returns the operand kinds of the instruction, or nil for an
// unknown opcode.
func (op Opcode) Signature() []OperandKind {
	return signatures[op]
}

// Operands returns the number of operand words the instruction carries.
func (op Opcode) Operands() int {
	return len(signatures[op])
}

// Known reports whether the opcode is part of the instruction set.
func (op Opcode) Known() bool {
	_, ok := signatures[op]
	return ok
}

// DisassembleAt renders the instruction at word index ip, and reports its
// total width in words. An unknown word renders as a '.word' directive of
// width 1.
func DisassembleAt(memory []int32, ip int32) (text string, width int32) {
	op := Opcode(uint32(memory[ip]))
	if !op.Known() {
		return fmt.Sprintf(".word %d", memory[ip]), 1
	}

	text = op.String()
	width = 1
	for _, kind := range op.Signature() {
		var word int32
		if int(ip+width) < len(memory) {
			word = memory[ip+width]
		}
		if kind == OPERAND_REGISTER && word >= 0 && word < RegisterCount {
			text += fmt.Sprintf(" %v", Register(word))
		} else {
			text += fmt.Sprintf(" %d", word)
		}
		width++
	}

	return
}

// Disassemble returns an iterator over the rendered instructions of a
// memory image, keyed by word index.
func Disassemble(memory []int32) iter.Seq2[int32, string] {
	return func(yield func(int32, string) bool) {
		for ip := int32(0); int(ip) < len(memory); {
			text, width := DisassembleAt(memory, ip)
			if !yield(ip, text) {
				return
			}
			ip += width
		}
	}
}
