// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/myiss/cpu"
	"github.com/ezrec/myiss/emulator"
	"github.com/ezrec/myiss/internal"
	"github.com/ezrec/myiss/report"
)

func main() {
	var verbose bool
	var limit int
	var expect string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&limit, "l", 0, "Instruction limit, 0 for none")
	flag.StringVar(&expect, "e", "", "Expression that must hold after the run")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v <assembly_file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(1)
	}

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Register(func() { inf.Close() })

	parser := &cpu.Parser{Verbose: verbose}
	prog, err := parser.Parse(inf)
	if err != nil {
		var se *cpu.ErrSyntax
		if errors.As(err, &se) {
			fmt.Fprintf(os.Stderr, "Unknown instruction: %v\n", se.Line)
		}
		if verbose || se == nil {
			log.Printf("%v: %v", source, err)
		}
		atexit.Exit(1)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Load(prog.Resolve())

	err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", source, err)
		atexit.Exit(1)
	}

	stats := report.FromCpu(emu.Cpu)
	_, err = stats.WriteTo(os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(1)
	}

	if len(expect) != 0 {
		ok, err := report.Check(expect, internal.IterSeq2Concat(stats.All(), emu.Cpu.Registers()))
		if err != nil {
			log.Printf("%v: %v", expect, err)
			atexit.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Expectation failed: %v\n", expect)
			atexit.Exit(2)
		}
	}

	atexit.Exit(0)
}
