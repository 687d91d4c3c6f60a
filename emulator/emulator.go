// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/myiss/cpu"
)

// Emulator state. CPU + resolved program.
type Emulator struct {
	Verbose  bool          // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program  *cpu.Resolved // Reference to the currently running program.

	// Limit is the maximum number of instructions to execute, or zero
	// for no limit. Without a limit, a program that never branches out of
	// its address space runs forever.
	Limit int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Load a resolved program, and reset the CPU.
func (emu *Emulator) Load(prog *cpu.Resolved) {
	emu.Program = prog
	emu.Reset()
}

// Reset the emulator state
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the source line number of the next instruction, or zero
// if the program counter is outside the program.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Instruction == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	if emu.Limit > 0 && emu.Cpu.Instructions >= emu.Limit {
		if _, ok := emu.Program.Fetch(emu.Cpu.Pc); ok {
			err = ErrStepLimit
			return
		}
	}

	done = emu.Cpu.Tick(emu.Program)

	return
}

// Run ticks the emulator until the program leaves its address space.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: done after %d instructions\n%v", emu.Cpu.Instructions, emu.Cpu)
	}

	return
}
