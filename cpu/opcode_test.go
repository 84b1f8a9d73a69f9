package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Values(t *testing.T) {
	assert := assert.New(t)

	// The binary encoding is frozen: the core operations are hex
	// assigned, the compare/jump family decimal.
	table := [](struct {
		op   Opcode
		want uint32
	}){
		{OP_NOP, 0x00},
		{OP_HALT, 0x01},
		{OP_ADD, 0x02},
		{OP_SUB, 0x03},
		{OP_MUL, 0x04},
		{OP_DIV, 0x05},
		{OP_INC, 0x06},
		{OP_DEC, 0x07},
		{OP_LOOP, 0x08},
		{OP_MOVR, 0x09},
		{OP_LOAD, 0x0a},
		{OP_STORE, 0x0b},
		{OP_IN, 0x0c},
		{OP_GET, 0x0d},
		{OP_OUT, 0x0e},
		{OP_PUT, 0x0f},
		{OP_SWAP, 0x10},
		{OP_PUSH, 0x11},
		{OP_POP, 0x12},
		{OP_CMP, 19},
		{OP_JMP, 20},
		{OP_JZ, 21},
		{OP_JNZ, 22},
		{OP_JGT, 23},
		{OP_CALL, 0x18},
		{OP_RET, 0x19},
	}

	assert.Equal(len(table), len(signatures))
	for _, entry := range table {
		assert.Equal(entry.want, uint32(entry.op), entry.op.String())
	}
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", OP_NOP.String())
	assert.Equal("MOVR", OP_MOVR.String())
	assert.Equal("CMP", OP_CMP.String())
	assert.Equal("RET", OP_RET.String())
	assert.Equal("Opcode(26)", Opcode(26).String())
	assert.Equal("Opcode(99)", Opcode(99).String())
}

func TestOpcode_Known(t *testing.T) {
	assert := assert.New(t)

	assert.True(OP_NOP.Known())
	assert.True(OP_RET.Known())
	assert.False(Opcode(26).Known())
	assert.False(Opcode(99).Known())

	// Every known opcode has a handler, and every handler a signature.
	for op := range signatures {
		_, ok := instructionSet[op]
		assert.True(ok, op.String())
	}
	for op := range instructionSet {
		assert.True(op.Known(), op.String())
	}
}

func TestOpcode_Operands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, OP_NOP.Operands())
	assert.Equal(0, OP_RET.Operands())
	assert.Equal(1, OP_ADD.Operands())
	assert.Equal(1, OP_JMP.Operands())
	assert.Equal(2, OP_MOVR.Operands())
	assert.Equal(2, OP_CALL.Operands())
	assert.Nil(Opcode(99).Signature())
}

func TestDisassembleAt(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		words []int32
		want  string
		width int32
	}){
		{"nop", []int32{int32(OP_NOP)}, "NOP", 1},
		{"movr", []int32{int32(OP_MOVR), 0, 5}, "MOVR A 5", 3},
		{"movr_negative", []int32{int32(OP_MOVR), 3, -7}, "MOVR D -7", 3},
		{"add", []int32{int32(OP_ADD), 1}, "ADD B", 2},
		{"add_bad_register", []int32{int32(OP_ADD), 9}, "ADD 9", 2},
		{"swap", []int32{int32(OP_SWAP), 0, 4}, "SWAP A Result", 3},
		{"loop", []int32{int32(OP_LOOP), 3}, "LOOP 3", 2},
		{"call", []int32{int32(OP_CALL), 2, 3}, "CALL 2 3", 3},
		{"unknown", []int32{99}, ".word 99", 1},
		{"unknown_negative", []int32{-5}, ".word -5", 1},
	}

	for _, entry := range table {
		text, width := DisassembleAt(entry.words, 0)
		assert.Equal(entry.want, text, entry.name)
		assert.Equal(entry.width, width, entry.name)
	}
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	memory := []int32{
		int32(OP_MOVR), 0, 5,
		int32(OP_ADD), 1,
		int32(OP_HALT),
		99,
	}

	ips := []int32{}
	texts := []string{}
	for ip, text := range Disassemble(memory) {
		ips = append(ips, ip)
		texts = append(texts, text)
	}

	assert.Equal([]int32{0, 3, 5, 6}, ips)
	assert.Equal([]string{"MOVR A 5", "ADD B", "HALT", ".word 99"}, texts)
}

func TestDisassemble_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	memory := []int32{int32(OP_NOP), int32(OP_NOP), int32(OP_NOP)}

	count := 0
	for range Disassemble(memory) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestOperandKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register", OPERAND_REGISTER.String())
	assert.Equal("value", OPERAND_VALUE.String())
	assert.Equal("address", OPERAND_ADDRESS.String())
	assert.Equal("return", OPERAND_RETURN.String())
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A", REGISTER_A.String())
	assert.Equal("B", REGISTER_B.String())
	assert.Equal("C", REGISTER_C.String())
	assert.Equal("D", REGISTER_D.String())
	assert.Equal("Result", REGISTER_RESULT.String())
	assert.Equal("Register(5)", Register(5).String())
}
