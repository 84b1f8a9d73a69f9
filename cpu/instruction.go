package cpu

import (
	"errors"
	"log"
)

// instructionSet maps opcode words to their handlers.
//
// A handler reads its operand words, advances the instruction pointer
// past them, and then validates. A nil return means success, and the
// engine advances the pointer one more word onto the next instruction.
// On a fault the handler latches the status, returns its sentinel error,
// and the pointer stays where the handler left it.
var instructionSet = map[Opcode]func(*Cpu) error{
	OP_NOP:   (*Cpu).executeNop,
	OP_HALT:  (*Cpu).executeHalt,
	OP_ADD:   (*Cpu).executeAdd,
	OP_SUB:   (*Cpu).executeSub,
	OP_MUL:   (*Cpu).executeMul,
	OP_DIV:   (*Cpu).executeDiv,
	OP_INC:   (*Cpu).executeInc,
	OP_DEC:   (*Cpu).executeDec,
	OP_LOOP:  (*Cpu).executeLoop,
	OP_MOVR:  (*Cpu).executeMovr,
	OP_LOAD:  (*Cpu).executeLoad,
	OP_STORE: (*Cpu).executeStore,
	OP_IN:    (*Cpu).executeIn,
	OP_GET:   (*Cpu).executeGet,
	OP_OUT:   (*Cpu).executeOut,
	OP_PUT:   (*Cpu).executePut,
	OP_SWAP:  (*Cpu).executeSwap,
	OP_PUSH:  (*Cpu).executePush,
	OP_POP:   (*Cpu).executePop,
	OP_CMP:   (*Cpu).executeCmp,
	OP_JMP:   (*Cpu).executeJmp,
	OP_JZ:    (*Cpu).executeJz,
	OP_JNZ:   (*Cpu).executeJnz,
	OP_JGT:   (*Cpu).executeJgt,
	OP_CALL:  (*Cpu).executeCall,
	OP_RET:   (*Cpu).executeRet,
}

// Step executes one instruction. A nil return means the instruction
// completed and the machine may continue. Any fault, and the HALT
// instruction, latch the status and return its sentinel error with the
// instruction pointer not advanced onto the next instruction.
func (cpu *Cpu) Step() (err error) {
	if cpu.status != STATUS_OK {
		return cpu.status.Err()
	}

	if cpu.ip < 0 || cpu.ip > cpu.endOfStack {
		cpu.status = STATUS_INVALID_ADDRESS
		return ErrInvalidAddress
	}

	opcode := Opcode(uint32(cpu.memory[cpu.ip]))
	execute, ok := instructionSet[opcode]
	if !ok {
		cpu.status = STATUS_ILLEGAL_INSTRUCTION
		return ErrIllegalInstruction
	}

	if cpu.Verbose {
		text, _ := DisassembleAt(cpu.memory, cpu.ip)
		log.Printf("%04d: %s", cpu.ip, text)
	}

	err = execute(cpu)
	if err != nil {
		return
	}

	cpu.ip++
	return
}

// Disassemble renders the instruction at the instruction pointer.
func (cpu *Cpu) Disassemble() (text string) {
	if cpu.ip < 0 || int(cpu.ip) >= len(cpu.memory) {
		return "?"
	}

	text, _ = DisassembleAt(cpu.memory, cpu.ip)

	return
}

// Run executes at most steps instructions, and returns the number
// executed. The HALT instruction counts as executed and ends the run.
// A fault ends the run and negates the count, so a run that faults on
// its nth step returns -n.
func (cpu *Cpu) Run(steps int) (executed int64) {
	if cpu.status != STATUS_OK {
		return 0
	}

	var faulted int64
	for n := 0; n < steps; n++ {
		err := cpu.Step()

		if cpu.status == STATUS_HALTED {
			executed++
			break
		}

		if err != nil {
			faulted++
			break
		}

		executed++
	}

	if faulted > 0 {
		return -(faulted + executed)
	}

	return executed
}

// operand returns the instruction word at the given offset past the
// instruction pointer. Reads past the buffer yield zero, matching the
// loader's zero fill of all memory beyond the program.
func (cpu *Cpu) operand(offset int32) int32 {
	index := cpu.ip + offset
	if int(index) >= len(cpu.memory) {
		return 0
	}

	return cpu.memory[index]
}

// validRegister checks a register index operand, latching
// STATUS_ILLEGAL_OPERAND when it is out of range.
func (cpu *Cpu) validRegister(reg int32) bool {
	if reg < 0 || reg >= RegisterCount {
		cpu.status = STATUS_ILLEGAL_OPERAND
		return false
	}

	return true
}

// doJump moves the instruction pointer so the engine's final advance
// lands exactly on the target address.
func (cpu *Cpu) doJump(target int32) {
	cpu.ip = target - 1
}

// doArith applies a binary operation to REGISTER_A and a register
// operand, mirroring the outcome into REGISTER_RESULT.
func (cpu *Cpu) doArith(apply func(a, b int32) int32) error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	cpu.register[REGISTER_A] = apply(cpu.register[REGISTER_A], cpu.register[reg])
	cpu.register[REGISTER_RESULT] = cpu.register[REGISTER_A]

	return nil
}

// doCount adjusts a register operand by delta, mirroring the outcome
// into REGISTER_RESULT.
func (cpu *Cpu) doCount(delta int32) error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	cpu.register[reg] += delta
	cpu.register[REGISTER_RESULT] = cpu.register[reg]

	return nil
}

// executeNop implements NOP: no machine state changes.
func (cpu *Cpu) executeNop() error {
	return nil
}

// executeHalt implements HALT: latch STATUS_HALTED with the instruction
// pointer still on the HALT word.
func (cpu *Cpu) executeHalt() error {
	cpu.status = STATUS_HALTED
	return ErrHalted
}

// executeAdd implements ADD r: A += r.
func (cpu *Cpu) executeAdd() error {
	return cpu.doArith(func(a, b int32) int32 { return a + b })
}

// executeSub implements SUB r: A -= r.
func (cpu *Cpu) executeSub() error {
	return cpu.doArith(func(a, b int32) int32 { return a - b })
}

// executeMul implements MUL r: A *= r.
func (cpu *Cpu) executeMul() error {
	return cpu.doArith(func(a, b int32) int32 { return a * b })
}

// executeDiv implements DIV r: A /= r, faulting when r holds zero.
func (cpu *Cpu) executeDiv() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if cpu.register[reg] == 0 {
		cpu.status = STATUS_DIV_BY_ZERO
		return ErrDivisionByZero
	}

	cpu.register[REGISTER_A] /= cpu.register[reg]
	cpu.register[REGISTER_RESULT] = cpu.register[REGISTER_A]

	return nil
}

// executeInc implements INC r: r += 1.
func (cpu *Cpu) executeInc() error {
	return cpu.doCount(1)
}

// executeDec implements DEC r: r -= 1.
func (cpu *Cpu) executeDec() error {
	return cpu.doCount(-1)
}

// executeLoop implements LOOP addr: jump while REGISTER_C is not zero.
// The count register is not validated, and the status stays STATUS_OK.
func (cpu *Cpu) executeLoop() error {
	target := cpu.operand(1)
	cpu.ip += 1

	if cpu.register[REGISTER_C] != 0 {
		cpu.doJump(target)
	}

	return nil
}

// executeMovr implements MOVR r num: r = num. The operand word is stored
// as is, with no range interpretation.
func (cpu *Cpu) executeMovr() error {
	reg := cpu.operand(1)
	num := cpu.operand(2)
	cpu.ip += 2

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	cpu.register[reg] = num

	return nil
}

// executeLoad implements LOAD r num: read the stack slot D+num below the
// top into r. Slot 0 is the newest item.
func (cpu *Cpu) executeLoad() error {
	reg := cpu.operand(1)
	num := cpu.operand(2)
	cpu.ip += 2

	end := cpu.stackSize
	depth := cpu.register[REGISTER_D] + num
	index := end - depth - 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if depth < 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	if index > end || index < 0 || end == 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	cpu.register[reg] = cpu.memory[cpu.stackSlot(index)]

	return nil
}

// executeStore implements STORE r num: write r into the stack slot D+num
// below the top. Slot 0 is the newest item.
func (cpu *Cpu) executeStore() error {
	reg := cpu.operand(1)
	num := cpu.operand(2)
	cpu.ip += 2

	end := cpu.stackSize
	depth := cpu.register[REGISTER_D] + num
	index := end - depth - 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if depth < 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	if index > end || index < 0 || end == 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	cpu.memory[cpu.stackSlot(index)] = cpu.register[reg]

	return nil
}

// executeIn implements IN r: read a whitespace delimited integer from
// the console into r. The register check precedes the operand advance,
// so a bad register faults with the pointer still on the IN word.
func (cpu *Cpu) executeIn() error {
	reg := cpu.operand(1)
	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}
	cpu.ip += 1

	if cpu.Console == nil {
		cpu.status = STATUS_IO_ERROR
		return ErrIo
	}

	value, err := cpu.Console.ReadInt()
	if err != nil {
		cpu.status = STATUS_IO_ERROR
		return errors.Join(ErrIo, err)
	}

	cpu.register[reg] = value

	return nil
}

// executeGet implements GET r: read one byte from the console into r.
// End of stream reports in band as r = -1 with REGISTER_C cleared, and
// the run continues. REGISTER_C clears before r is set, so a GET into C
// still reads -1.
func (cpu *Cpu) executeGet() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if cpu.Console == nil {
		cpu.register[REGISTER_C] = 0
		cpu.register[reg] = -1
		return nil
	}

	value, err := cpu.Console.ReadByte()
	if err != nil {
		cpu.register[REGISTER_C] = 0
		cpu.register[reg] = -1
		return nil
	}

	cpu.register[reg] = int32(value)

	return nil
}

// executeOut implements OUT r: write r to the console as a decimal
// number. A nil console discards the output.
func (cpu *Cpu) executeOut() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if cpu.Console == nil {
		return nil
	}

	err := cpu.Console.WriteInt(cpu.register[reg])
	if err != nil {
		cpu.status = STATUS_IO_ERROR
		return errors.Join(ErrIo, err)
	}

	return nil
}

// executePut implements PUT r: write r to the console as a single byte.
// Values outside [0, 255] fault as illegal operands. A nil console
// discards the output.
func (cpu *Cpu) executePut() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	value := cpu.register[reg]
	if value < 0 || value > 255 {
		cpu.status = STATUS_ILLEGAL_OPERAND
		return ErrIllegalOperand
	}

	if cpu.Console == nil {
		return nil
	}

	err := cpu.Console.WriteByte(byte(value))
	if err != nil {
		cpu.status = STATUS_IO_ERROR
		return errors.Join(ErrIo, err)
	}

	return nil
}

// executeSwap implements SWAP r1 r2: exchange two registers. The second
// register is not validated when the first is already out of range.
func (cpu *Cpu) executeSwap() error {
	reg1 := cpu.operand(1)
	reg2 := cpu.operand(2)
	cpu.ip += 2

	if !cpu.validRegister(reg1) || !cpu.validRegister(reg2) {
		return ErrIllegalOperand
	}

	cpu.register[reg1], cpu.register[reg2] = cpu.register[reg2], cpu.register[reg1]

	return nil
}

// executePush implements PUSH r: copy r onto the top of the stack.
func (cpu *Cpu) executePush() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if cpu.stackSize >= cpu.stackCapacity {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	cpu.memory[cpu.stackSlot(cpu.stackSize)] = cpu.register[reg]
	cpu.stackSize++

	return nil
}

// executePop implements POP r: move the top of the stack into r, zeroing
// the vacated slot.
func (cpu *Cpu) executePop() error {
	reg := cpu.operand(1)
	cpu.ip += 1

	if !cpu.validRegister(reg) {
		return ErrIllegalOperand
	}

	if cpu.stackSize <= 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	slot := cpu.stackSlot(cpu.stackSize - 1)
	cpu.register[reg] = cpu.memory[slot]
	cpu.memory[slot] = 0
	cpu.stackSize--

	return nil
}

// executeCmp implements CMP r1 r2: REGISTER_RESULT = r1 - r2. The second
// register is not validated when the first is already out of range.
func (cpu *Cpu) executeCmp() error {
	reg1 := cpu.operand(1)
	reg2 := cpu.operand(2)
	cpu.ip += 2

	if !cpu.validRegister(reg1) || !cpu.validRegister(reg2) {
		return ErrIllegalOperand
	}

	cpu.register[REGISTER_RESULT] = cpu.register[reg1] - cpu.register[reg2]

	return nil
}

// executeJmp implements JMP addr: jump unconditionally.
func (cpu *Cpu) executeJmp() error {
	target := cpu.operand(1)
	cpu.ip += 1

	cpu.doJump(target)

	return nil
}

// executeJz implements JZ addr: jump when REGISTER_RESULT is zero.
func (cpu *Cpu) executeJz() error {
	target := cpu.operand(1)
	cpu.ip += 1

	if cpu.register[REGISTER_RESULT] == 0 {
		cpu.doJump(target)
	}

	return nil
}

// executeJnz implements JNZ addr: jump when REGISTER_RESULT is not zero.
func (cpu *Cpu) executeJnz() error {
	target := cpu.operand(1)
	cpu.ip += 1

	if cpu.register[REGISTER_RESULT] != 0 {
		cpu.doJump(target)
	}

	return nil
}

// executeJgt implements JGT addr: jump when REGISTER_RESULT is positive.
func (cpu *Cpu) executeJgt() error {
	target := cpu.operand(1)
	cpu.ip += 1

	if cpu.register[REGISTER_RESULT] > 0 {
		cpu.doJump(target)
	}

	return nil
}

// executeCall implements CALL addr retaddr: push the return address word
// and jump. The return address is pushed exactly as encoded, with no
// register interpretation.
func (cpu *Cpu) executeCall() error {
	target := cpu.operand(1)
	retaddr := cpu.operand(2)
	cpu.ip += 2

	if cpu.stackSize >= cpu.stackCapacity {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	cpu.memory[cpu.stackSlot(cpu.stackSize)] = retaddr
	cpu.stackSize++

	cpu.doJump(target)

	return nil
}

// executeRet implements RET: pop the return address and jump to it,
// zeroing the vacated slot.
func (cpu *Cpu) executeRet() error {
	if cpu.stackSize == 0 {
		cpu.status = STATUS_INVALID_STACK_OPERATION
		return ErrInvalidStackOperation
	}

	slot := cpu.stackSlot(cpu.stackSize - 1)
	target := cpu.memory[slot]
	cpu.memory[slot] = 0
	cpu.stackSize--

	cpu.doJump(target)

	return nil
}
