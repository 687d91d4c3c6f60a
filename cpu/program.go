package cpu

import (
	"iter"
	"slices"
)

// Program is a parsed, unresolved instruction sequence.
type Program struct {
	Instructions []Instruction
}

// Lookup finds the first instruction carrying the line number.
func (prog *Program) Lookup(lineno int) (index int, ok bool) {
	index = slices.IndexFunc(prog.Instructions, func(ins Instruction) bool {
		return ins.LineNo == lineno
	})
	ok = index >= 0
	return
}

// Resolve translates every branch target from a source line number into an
// instruction index. A target with no matching line resolves to the program
// length, which terminates execution when taken.
//
// The Program itself is left untouched.
func (prog *Program) Resolve() (res *Resolved) {
	end := len(prog.Instructions)

	// Earliest instruction wins on duplicate line numbers.
	index := make(map[int]int, end)
	for n, ins := range prog.Instructions {
		if _, ok := index[ins.LineNo]; !ok {
			index[ins.LineNo] = n
		}
	}

	res = &Resolved{
		program: prog,
		codes:   make([]Code, 0, end),
	}

	for _, ins := range prog.Instructions {
		code := Code{
			Op: ins.Op,
			Rn: ins.Rn,
			Rm: ins.Rm,
		}
		switch ins.Op {
		case OP_MOV, OP_ADD_IMM:
			code.Imm = Truncate(ins.Imm)
		case OP_JE, OP_JMP:
			target, ok := index[ins.Target]
			if !ok {
				target = end
			}
			code.Target = target
		}
		res.codes = append(res.codes, code)
	}

	return
}

// Resolved is an executable program. It can only be built by
// Program.Resolve, so every branch target is an instruction index or the
// termination sentinel Len().
type Resolved struct {
	program *Program
	codes   []Code
}

// Len returns the number of instructions, which is also the termination
// sentinel.
func (res *Resolved) Len() int {
	return len(res.codes)
}

// Fetch returns the code at pc, or false if pc is outside the program.
func (res *Resolved) Fetch(pc int) (code Code, ok bool) {
	if pc < 0 || pc >= len(res.codes) {
		return
	}

	return res.codes[pc], true
}

// Codes iterates over the program in index order.
func (res *Resolved) Codes() iter.Seq2[int, Code] {
	return slices.All(res.codes)
}

// Debug ties an executable code back to its source instruction.
type Debug struct {
	*Instruction
	Index int
}

// Debug returns the source of the code at pc. The Instruction is nil if pc
// is outside the program.
func (res *Resolved) Debug(pc int) (dbg Debug) {
	dbg.Index = pc
	if pc < 0 || pc >= len(res.codes) || res.program == nil {
		return
	}

	dbg.Instruction = &res.program.Instructions[pc]
	return
}
