// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ucpu/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// Register is the index of a general purpose register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REGISTER_A      = Register(0) // A
	REGISTER_B      = Register(1) // B
	REGISTER_C      = Register(2) // C
	REGISTER_D      = Register(3) // D
	REGISTER_RESULT = Register(4) // Result
)

// RegisterCount is the size of the register bank.
const RegisterCount = int32(REGISTER_RESULT) + 1

var _cpu_defines = map[string]string{
	"EOF":         "-1",
	"REGISTERS":   fmt.Sprintf("%d", RegisterCount),
	"BLOCK_WORDS": fmt.Sprintf("%d", BLOCK_WORDS),
}

// Defines returns the assembler definitions of the machine constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Cpu is the simulation context for one processor and its memory.
//
// A single memory buffer holds both the program and the stack. The program
// occupies the low words, and the stack grows downward from the last word
// of the buffer, stackBottom. endOfStack is the lowest index the stack can
// ever reach, and also the highest index the instruction pointer may fetch
// from.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Console Channel // Console device, or nil to read end-of-stream and discard writes.

	memory        []int32
	stackBottom   int32
	stackCapacity int32
	endOfStack    int32

	ip        int32
	stackSize int32
	status    Status
	register  [RegisterCount]int32
}

// NewCpu wraps a loaded memory buffer in a machine. stackBottom and
// stackCapacity describe the stack region, as produced by LoadMemory.
func NewCpu(memory []int32, stackBottom int32, stackCapacity int) (cpu *Cpu) {
	cpu = &Cpu{
		memory:        memory,
		stackBottom:   stackBottom,
		stackCapacity: int32(stackCapacity),
		endOfStack:    stackBottom - int32(stackCapacity),
	}

	return cpu
}

// Ip returns the instruction pointer.
func (cpu *Cpu) Ip() int32 {
	return cpu.ip
}

// SetIp repositions the instruction pointer.
func (cpu *Cpu) SetIp(ip int32) {
	cpu.ip = ip
}

// Status returns the machine condition.
func (cpu *Cpu) Status() Status {
	return cpu.status
}

// StackSize returns the number of occupied stack slots.
func (cpu *Cpu) StackSize() int32 {
	return cpu.stackSize
}

// StackCapacity returns the total number of stack slots.
func (cpu *Cpu) StackCapacity() int32 {
	return cpu.stackCapacity
}

// GetRegister returns the value of a register. An out of range index is a
// caller contract violation and panics.
func (cpu *Cpu) GetRegister(reg Register) int32 {
	if reg < REGISTER_A || reg > REGISTER_RESULT {
		panic(fmt.Sprintf("register %d out of range", reg))
	}

	return cpu.register[reg]
}

// SetRegister assigns the value of a register. An out of range index is a
// caller contract violation and panics.
func (cpu *Cpu) SetRegister(reg Register, value int32) {
	if reg < REGISTER_A || reg > REGISTER_RESULT {
		panic(fmt.Sprintf("register %d out of range", reg))
	}

	cpu.register[reg] = value
}

// Reset clears the registers, the stack contents, and the status. The
// instruction pointer keeps its value, so callers that rerun a program
// must reposition it themselves.
func (cpu *Cpu) Reset() {
	clear(cpu.register[:])
	cpu.stackSize = 0
	cpu.status = STATUS_OK

	for n := cpu.endOfStack + 1; n <= cpu.stackBottom; n++ {
		cpu.memory[n] = 0
	}
}

// Destroy zeroes the machine state and releases the memory buffer. The
// machine must not be used afterward.
func (cpu *Cpu) Destroy() {
	clear(cpu.memory)
	clear(cpu.register[:])
	cpu.memory = nil
	cpu.stackBottom = 0
	cpu.stackCapacity = 0
	cpu.endOfStack = 0
	cpu.stackSize = 0
	cpu.ip = 0
	cpu.status = STATUS_OK
}

// String renders the machine state as a multi-line register dump.
func (cpu *Cpu) String() (text string) {
	names := []string{"ip", "status", "a", "b", "c", "d", "result", "depth", "stack"}
	for _, name := range names {
		var strval string
		switch name {
		case "ip":
			strval = fmt.Sprintf("%d", cpu.ip)
		case "status":
			strval = cpu.status.String()
		case "a", "b", "c", "d":
			strval = fmt.Sprintf("%d", cpu.register[name[0]-'a'])
		case "result":
			strval = fmt.Sprintf("%d", cpu.register[REGISTER_RESULT])
		case "depth":
			strval = fmt.Sprintf("%d of %d", cpu.stackSize, cpu.stackCapacity)
		case "stack":
			strval = fmt.Sprintf("%v", cpu.StackSlice())
		}
		text += fmt.Sprintf("%6s: %v\n", name, strval)
	}

	return text
}
