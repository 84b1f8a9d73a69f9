// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ucpu/cpu"
	"github.com/ezrec/ucpu/emulator"
)

func main() {
	var compile string
	var output string
	var save bool
	var listing bool
	var trace bool
	var steps int
	var stack int
	var input string
	var verbose bool

	flag.StringVar(&compile, "c", "", "Assembly source file to compile")
	flag.StringVar(&output, "o", "", "File to write the compiled binary to")
	flag.BoolVar(&save, "s", false, "Compile and save only, do not execute")
	flag.BoolVar(&listing, "l", false, "Print the compiled listing")
	flag.BoolVar(&trace, "t", false, "Trace execution to stderr")
	flag.IntVar(&steps, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.IntVar(&stack, "k", emulator.STACK_CAPACITY, "Stack capacity, in words")
	flag.StringVar(&input, "i", "-", "Console input file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 || (len(compile) != 0 && flag.NArg() != 0) {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StackCapacity = stack

	// Compile a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}

		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if listing {
			for ip, text := range cpu.Disassemble(prog.Words()) {
				fmt.Printf("%04d: %s\n", ip, text)
			}
		}

		if len(output) != 0 {
			err = os.WriteFile(output, prog.Binary(), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}

		err = emu.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else if flag.NArg() == 1 {
		name := flag.Arg(0)

		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		err = emu.LoadBinary(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	} else {
		flag.Usage()
		os.Exit(2)
	}

	if save {
		return
	}

	if input == "-" {
		emu.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Console.Input = inf
	}
	emu.Console.Output = os.Stdout

	var executed int64
	for {
		budget := steps
		if budget == 0 {
			budget = 1 << 20
		}

		var n int64
		var err error
		if trace {
			n, err = emu.Trace(budget, os.Stderr)
		} else {
			n, err = emu.Run(budget)
		}
		if err != nil {
			log.Fatal(err)
		}
		executed += n

		if emu.Status() != cpu.STATUS_OK || steps != 0 {
			break
		}
	}

	if verbose {
		log.Printf("executed %v instructions, status %v", executed, emu.Status())
	}
}
