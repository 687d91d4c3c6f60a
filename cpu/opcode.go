package cpu

import (
	"fmt"
)

// Opcode is the operation performed by an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INVALID = Opcode(0) // INVALID
	OP_MOV     = Opcode(1) // MOV
	OP_ADD_REG = Opcode(2) // ADD
	OP_ADD_IMM = Opcode(3) // ADD
	OP_CMP     = Opcode(4) // CMP
	OP_JE      = Opcode(5) // JE
	OP_JMP     = Opcode(6) // JMP
	OP_LD      = Opcode(7) // LD
	OP_ST      = Opcode(8) // ST
)

// Branch returns true if the opcode carries a branch target.
func (op Opcode) Branch() bool {
	return op == OP_JE || op == OP_JMP
}

// Memory returns true if the opcode accesses memory.
func (op Opcode) Memory() bool {
	return op == OP_LD || op == OP_ST
}

// REGISTERS is the size of the register bank.
const REGISTERS = 6

// Register is an index into the register bank.
type Register int

// REG_NONE marks a register operand that the opcode does not use.
const REG_NONE = Register(-1)

// Valid returns true if the register indexes the register bank.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REGISTERS
}

// String returns the assembly name of the register.
func (reg Register) String() string {
	if !reg.Valid() {
		return "-"
	}
	return fmt.Sprintf("R%d", int(reg)+1)
}

// Instruction is a parsed source line. Branch targets are still source
// line numbers.
type Instruction struct {
	LineNo     int      // Line number token at the start of the line.
	SourceLine int      // Physical line in the input stream.
	Text       string   // Raw source text.
	Op         Opcode   // Operation.
	Rn         Register // Destination, or data register for ST.
	Rm         Register // Source, or address register for LD/ST.
	Imm        int      // Immediate for MOV and ADD.
	Target     int      // Branch target line number for JE and JMP.
}

// String returns the canonical assembly text of the instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%d %v", ins.LineNo, operands(ins.Op, ins.Rn, ins.Rm, ins.Imm, fmt.Sprint(ins.Target)))
}

// Code is an executable instruction. Branch targets are instruction indexes.
type Code struct {
	Op     Opcode
	Rn     Register
	Rm     Register
	Imm    int8
	Target int
}

// String returns the assembly representation of the code, with branch
// targets shown as instruction indexes.
func (code Code) String() string {
	return operands(code.Op, code.Rn, code.Rm, int(code.Imm), fmt.Sprintf("@%d", code.Target))
}

func operands(op Opcode, rn, rm Register, imm int, target string) string {
	switch op {
	case OP_MOV, OP_ADD_IMM:
		return fmt.Sprintf("%v %v, %d", op, rn, imm)
	case OP_ADD_REG, OP_CMP:
		return fmt.Sprintf("%v %v, %v", op, rn, rm)
	case OP_JE, OP_JMP:
		return fmt.Sprintf("%v %v", op, target)
	case OP_LD:
		return fmt.Sprintf("%v %v, [%v]", op, rn, rm)
	case OP_ST:
		return fmt.Sprintf("%v [%v], %v", op, rm, rn)
	}
	return op.String()
}
