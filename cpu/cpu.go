package cpu

import (
	"fmt"
	"iter"
	"log"
)

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTERS]int8 // Register bank.
	Memory   Memory          // Data memory and its warm flags.
	Equal    bool            // Result of the last CMP.
	Pc       int             // Index of the next instruction.

	Instructions int // Instructions executed.
	Cycles       int // Clock cycles consumed.
	LocalHits    int // Memory accesses to warm addresses.
	LoadStores   int // LD and ST instructions executed.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	return
}

// Reset the CPU state.
// - Clears the registers, memory and the compare flag.
// - Zeros statistics counters.
// - Sets the program counter to the first instruction.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Memory.Reset()
	cpu.Equal = false
	cpu.Pc = 0

	cpu.Instructions = 0
	cpu.Cycles = 0
	cpu.LocalHits = 0
	cpu.LoadStores = 0
}

// Registers iterates over the register names, r1 through r6, and values.
func (cpu *Cpu) Registers() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for n, value := range cpu.Register {
			if !yield(fmt.Sprintf("r%d", n+1), int(value)) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %03d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "equal", cpu.Equal)
	for n, value := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X (%d)\n", Register(n).String(), Byte(value), value)
	}
	text += fmt.Sprintf("% 5s: %d/%d\n", "warm", cpu.Memory.Warm(), MEMORY_SIZE)

	return
}

// Tick executes the instruction at the program counter. It returns done,
// without executing anything, once the program counter has left the
// program.
func (cpu *Cpu) Tick(prog *Resolved) (done bool) {
	code, ok := prog.Fetch(cpu.Pc)
	if !ok {
		done = true
		return
	}

	cpu.Execute(code)

	return
}

// Execute executes a single resolved instruction.
func (cpu *Cpu) Execute(code Code) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, code)
	}

	cpu.Instructions += 1

	next_pc := cpu.Pc + 1
	cycles := CYCLE_BASIC

	switch code.Op {
	case OP_MOV:
		cpu.Register[code.Rn] = code.Imm
	case OP_ADD_REG:
		cpu.Register[code.Rn] = Add8(cpu.Register[code.Rn], cpu.Register[code.Rm])
	case OP_ADD_IMM:
		cpu.Register[code.Rn] = Add8(cpu.Register[code.Rn], code.Imm)
	case OP_CMP:
		cpu.Equal = Byte(cpu.Register[code.Rn]) == Byte(cpu.Register[code.Rm])
	case OP_JE:
		if cpu.Equal {
			next_pc = code.Target
		}
	case OP_JMP:
		next_pc = code.Target
	case OP_LD:
		var value uint8
		var hit bool
		value, cycles, hit = cpu.Memory.Load(Byte(cpu.Register[code.Rm]))
		cpu.Register[code.Rn] = Signed(value)
		cpu.memoryStats(hit)
	case OP_ST:
		var hit bool
		cycles, hit = cpu.Memory.Store(Byte(cpu.Register[code.Rm]), Byte(cpu.Register[code.Rn]))
		cpu.memoryStats(hit)
	case OP_INVALID:
		panic(fmt.Sprintf("cpu: %v at %d", code.Op, cpu.Pc))
	default:
		panic(fmt.Sprintf("cpu: unknown opcode %v at %d", code.Op, cpu.Pc))
	}

	cpu.Cycles += cycles
	cpu.Pc = next_pc
}

// memoryStats counts a load or store.
func (cpu *Cpu) memoryStats(hit bool) {
	cpu.LoadStores += 1
	if hit {
		cpu.LocalHits += 1
	}
}
