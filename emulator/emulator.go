// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/ucpu/cpu"
	"github.com/ezrec/ucpu/internal"
	ucio "github.com/ezrec/ucpu/io"
)

// STACK_CAPACITY is the default stack capacity, in words.
const STACK_CAPACITY = 256

// Emulator couples a machine with a console and an assembled listing for
// source level error reporting.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // The machine, created by LoadBinary or LoadProgram.
	Program  *cpu.Program // The running program listing, when assembled here.

	Console       ucio.Console // Console device wired to the machine.
	StackCapacity int          // Stack capacity for the next load, in words.
}

// NewEmulator creates an emulator with the default stack capacity. The
// machine itself is created by LoadBinary or LoadProgram.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:       &cpu.Program{},
		StackCapacity: STACK_CAPACITY,
	}

	return
}

// Defines returns an iterator over all of the assembler definitions the
// emulator and its machine export.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"STACK_CAPACITY": fmt.Sprintf("%v", emu.StackCapacity),
	}

	return internal.IterSeq2Concat(maps.All(defines), cpu.Defines())
}

// LoadBinary reads a binary program into a fresh machine wired to the
// emulator console.
func (emu *Emulator) LoadBinary(input io.Reader) (err error) {
	memory, stackBottom, err := cpu.LoadMemory(input, emu.StackCapacity)
	if err != nil {
		return
	}

	emu.Cpu = cpu.NewCpu(memory, stackBottom, emu.StackCapacity)
	emu.Cpu.Console = &emu.Console
	emu.Cpu.Verbose = emu.Verbose

	return
}

// LoadProgram loads an assembled listing, keeping it for source mapping.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	emu.Program = prog

	return emu.LoadBinary(bytes.NewReader(prog.Binary()))
}

// Close releases the machine.
func (emu *Emulator) Close() (err error) {
	if emu.Cpu != nil {
		emu.Cpu.Destroy()
		emu.Cpu = nil
	}

	return
}

// Reset returns the machine to its power-on state and rewinds the
// console. The processor's own Reset keeps the instruction pointer, so
// the emulator repositions it onto the first word.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Cpu.SetIp(0)
	emu.Console.Rewind()
}

// LineNo returns the source line number of the instruction at the
// instruction pointer, or 0 when no listing covers it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Ip())
	if dbg.Statement == nil {
		return 0
	}

	return dbg.Statement.LineNo
}

// Step executes a single instruction. done reports a clean HALT. Faults
// return as an ErrRuntime locating the source line.
func (emu *Emulator) Step() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}

	return
}

// Run executes up to budget instructions, returning the count executed
// with the machine's sign convention: a run that faults on its nth step
// returns -n, and an ErrRuntime locating the source line.
func (emu *Emulator) Run(budget int) (executed int64, err error) {
	executed = emu.Cpu.Run(budget)
	if executed < 0 {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: emu.Cpu.Status().Err()}
	}

	return
}

// Trace executes like Run, writing each instruction and the machine
// state after it to w.
func (emu *Emulator) Trace(budget int, w io.Writer) (executed int64, err error) {
	var faulted int64
	for n := 0; n < budget; n++ {
		fmt.Fprintf(w, "%04d: %s\n", emu.Cpu.Ip(), emu.Cpu.Disassemble())

		done, serr := emu.Step()
		fmt.Fprint(w, emu.Cpu.String())

		if done {
			executed++
			break
		}
		if serr != nil {
			err = serr
			faulted++
			break
		}

		executed++
	}

	if faulted > 0 {
		executed = -(faulted + executed)
	}

	return
}
