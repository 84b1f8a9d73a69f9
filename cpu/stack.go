package cpu

// stackSlot returns the memory index of the stack item at logical
// position pos. Position 0 is the oldest item, at stackBottom, and
// positions count down in memory from there.
func (cpu *Cpu) stackSlot(pos int32) int32 {
	return cpu.stackBottom - pos
}

// StackSlice returns a copy of the occupied stack items, oldest first.
func (cpu *Cpu) StackSlice() (items []int32) {
	for pos := int32(0); pos < cpu.stackSize; pos++ {
		items = append(items, cpu.memory[cpu.stackSlot(pos)])
	}

	return
}

// StackEmpty reports whether no stack slots are occupied.
func (cpu *Cpu) StackEmpty() bool {
	return cpu.stackSize == 0
}

// StackFull reports whether every stack slot is occupied.
func (cpu *Cpu) StackFull() bool {
	return cpu.stackSize == cpu.stackCapacity
}
