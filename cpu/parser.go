// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// delimiters separate the tokens of a source line.
const delimiters = " ,[]\t\n\r"

// IMM_MIN and IMM_MAX bound the immediate operand of MOV and ADD.
const (
	IMM_MIN = -128
	IMM_MAX = 127
)

// Parser reads source text into a Program.
type Parser struct {
	Verbose     bool          // If set, logs each parsed line.
	Instruction []Instruction // Instructions parsed so far.
}

// opcodeMap maps opcode keywords. ADD is refined by its second operand.
var opcodeMap = map[string]Opcode{
	"MOV": OP_MOV,
	"ADD": OP_ADD_IMM,
	"CMP": OP_CMP,
	"JE":  OP_JE,
	"JMP": OP_JMP,
	"LD":  OP_LD,
	"ST":  OP_ST,
}

// split breaks a line into its tokens. Runs of delimiters count as one.
func split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// register parses a register token, R1 through R6.
func register(word string) (reg Register, err error) {
	if len(word) != 2 || word[0] != 'R' {
		err = ErrRegister(word)
		return
	}

	reg = Register(word[1]) - '1'
	if !reg.Valid() {
		reg = REG_NONE
		err = ErrRegister(word)
		return
	}

	return
}

// immediate parses a signed decimal immediate.
func immediate(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < IMM_MIN || v64 > IMM_MAX {
		err = ErrImmediateRange
		return
	}

	value = int(v64)
	return
}

// target parses a branch target line number.
func target(word string) (lineno int, err error) {
	lineno, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if lineno < 0 {
		err = ErrTargetInvalid
		return
	}

	return
}

// ParseLine parses a single non-blank source line into an instruction.
// The instruction is only meaningful if err is nil.
func ParseLine(line string) (ins Instruction, err error) {
	ins = Instruction{
		Text: line,
		Op:   OP_INVALID,
		Rn:   REG_NONE,
		Rm:   REG_NONE,
	}

	words := split(line)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	ins.LineNo, err = strconv.Atoi(words[0])
	if err != nil {
		err = ErrParseNumber(words[0])
		return
	}
	words = words[1:]

	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := opcodeMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	args := words[1:]

	if len(args) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	// Every form takes two operands, except for the branches.
	want := 2
	if op.Branch() {
		want = 1
	}
	if len(args) < want {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > want {
		err = ErrOpcodeExtraArgs
		return
	}

	var rn, rm Register
	var imm, addr int

	switch op {
	case OP_MOV:
		rn, err = register(args[0])
		if err != nil {
			return
		}
		imm, err = immediate(args[1])
		if err != nil {
			return
		}
		ins.Rn, ins.Imm = rn, imm
	case OP_ADD_IMM:
		rn, err = register(args[0])
		if err != nil {
			return
		}
		if strings.HasPrefix(args[1], "R") {
			op = OP_ADD_REG
			rm, err = register(args[1])
			if err != nil {
				return
			}
			ins.Rn, ins.Rm = rn, rm
		} else {
			imm, err = immediate(args[1])
			if err != nil {
				return
			}
			ins.Rn, ins.Imm = rn, imm
		}
	case OP_CMP, OP_LD:
		rn, err = register(args[0])
		if err != nil {
			return
		}
		rm, err = register(args[1])
		if err != nil {
			return
		}
		ins.Rn, ins.Rm = rn, rm
	case OP_ST:
		// ST [Rm], Rn
		rm, err = register(args[0])
		if err != nil {
			return
		}
		rn, err = register(args[1])
		if err != nil {
			return
		}
		ins.Rn, ins.Rm = rn, rm
	case OP_JE, OP_JMP:
		addr, err = target(args[0])
		if err != nil {
			return
		}
		ins.Target = addr
	}

	ins.Op = op

	return
}

// Parse parses an input stream into an unresolved Program.
//
// Blank lines are skipped. The first malformed line aborts parsing with an
// *ErrSyntax, and no Program is returned.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var bad error

	defer func() {
		if bad != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: bad}
		}
	}()

	p.Instruction = p.Instruction[:0]

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		var ins Instruction
		ins, bad = ParseLine(line)
		if bad != nil {
			return
		}
		ins.SourceLine = lineno

		p.Instruction = append(p.Instruction, ins)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(p.Instruction),
	}

	return
}
