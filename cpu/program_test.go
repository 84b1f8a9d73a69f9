package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Words: []string{"movr", "a", "5"},
				Codes: []int32{int32(OP_MOVR), 0, 5}},
			{LineNo: 2, Ip: 3, Words: []string{"add", "b"},
				Codes: []int32{int32(OP_ADD), 1}},
			{LineNo: 3, Ip: 5, Words: []string{"halt"},
				Codes: []int32{int32(OP_HALT)}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.Statement.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Statement)
	assert.Equal(2, dbg.Statement.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Statement)
	assert.Equal(3, dbg.Statement.LineNo)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_MidStatement(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Words: []string{"movr", "a", "5"},
				Codes: []int32{int32(OP_MOVR), 0, 5}},
		},
	}

	dbg := prog.Debug(1)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.Statement.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(2)
	assert.Equal(2, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Words: []string{"halt"},
				Codes: []int32{int32(OP_HALT)}},
		},
	}

	dbg := prog.Debug(10)
	assert.Nil(dbg.Statement)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Words(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Codes: []int32{int32(OP_MOVR), 0, 5}},
			{LineNo: 2, Ip: 3, Codes: []int32{int32(OP_HALT)}},
		},
	}

	assert.Equal([]int32{int32(OP_MOVR), 0, 5, int32(OP_HALT)}, prog.Words())
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Codes: []int32{1, -2}},
		},
	}

	bins := prog.Binary()
	assert.Equal([]byte{
		0x01, 0x00, 0x00, 0x00,
		0xfe, 0xff, 0xff, 0xff,
	}, bins)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Codes: []int32{int32(OP_MOVR), 0, 5}},
			{LineNo: 2, Ip: 3, Codes: []int32{int32(OP_ADD), 1}},
		},
	}

	ips := []int32{}
	words := []int32{}
	for ip, word := range prog.Codes() {
		ips = append(ips, ip)
		words = append(words, word)
	}

	assert.Equal([]int32{0, 1, 2, 3, 4}, ips)
	assert.Equal([]int32{int32(OP_MOVR), 0, 5, int32(OP_ADD), 1}, words)
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Codes: []int32{int32(OP_MOVR), 0, 5}},
		},
	}

	count := 0
	for range prog.Codes() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestProgram_Codes_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}

	count := 0
	for range prog.Codes() {
		count++
	}

	assert.Equal(0, count)
}

func TestProgram_Integration_ParseAndBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"movr a 5",
		"movr b 3",
		"add b",
		"halt",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	bins := prog.Binary()
	assert.Equal(9*4, len(bins))
	assert.Equal(byte(OP_MOVR), bins[0])
	assert.Equal(byte(OP_HALT), bins[8*4])
}

func TestProgram_Integration_ParseAndDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"movr a 5",
		"movr b 3",
		"add b",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.Statement.LineNo)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Statement)
	assert.Equal(2, dbg.Statement.LineNo)

	dbg = prog.Debug(7)
	assert.NotNil(dbg.Statement)
	assert.Equal(3, dbg.Statement.LineNo)
	assert.Equal(1, dbg.Index)
}
