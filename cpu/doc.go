// Package cpu implements the processor, loader, and assembler for the μCPU
// register machine.
//
// The machine has five signed 32 bit registers (A, B, C, D, and Result), and
// a single word addressed memory buffer shared by the program and a downward
// growing stack. A status latch stops execution at the first fault, and a
// stopped machine stays stopped until Reset.
//
// Programs load from a flat binary stream of 32 bit little-endian words. The
// assembler provides an assembly language for the instruction set, supporting
// macros, labels, equates, and compile-time expression evaluation.
package cpu
