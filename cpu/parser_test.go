package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line     string
		expected Instruction
	}){
		{"1 MOV R1, 5", Instruction{LineNo: 1, Op: OP_MOV, Rn: 0, Rm: REG_NONE, Imm: 5}},
		{"2 MOV R6, -128", Instruction{LineNo: 2, Op: OP_MOV, Rn: 5, Rm: REG_NONE, Imm: -128}},
		{"3 ADD R1, R2", Instruction{LineNo: 3, Op: OP_ADD_REG, Rn: 0, Rm: 1}},
		{"4 ADD R3, -7", Instruction{LineNo: 4, Op: OP_ADD_IMM, Rn: 2, Rm: REG_NONE, Imm: -7}},
		{"5 CMP R4, R5", Instruction{LineNo: 5, Op: OP_CMP, Rn: 3, Rm: 4}},
		{"6 JE 10", Instruction{LineNo: 6, Op: OP_JE, Rn: REG_NONE, Rm: REG_NONE, Target: 10}},
		{"7 JMP 0", Instruction{LineNo: 7, Op: OP_JMP, Rn: REG_NONE, Rm: REG_NONE, Target: 0}},
		{"8 LD R2, [R1]", Instruction{LineNo: 8, Op: OP_LD, Rn: 1, Rm: 0}},
		{"9 ST [R1], R2", Instruction{LineNo: 9, Op: OP_ST, Rn: 1, Rm: 0}},
		{"10\tMOV\tR1,127\r", Instruction{LineNo: 10, Op: OP_MOV, Rn: 0, Rm: REG_NONE, Imm: 127}},
		{"  11 ST[R2],R3", Instruction{LineNo: 11, Op: OP_ST, Rn: 2, Rm: 1}},
		{"100 JE 99", Instruction{LineNo: 100, Op: OP_JE, Rn: REG_NONE, Rm: REG_NONE, Target: 99}},
	}

	for _, entry := range table {
		ins, err := ParseLine(entry.line)
		assert.NoError(err, entry.line)
		entry.expected.Text = entry.line
		assert.Equal(entry.expected, ins, entry.line)
	}
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"", ErrOpcodeMissing},
		{"1", ErrOpcodeMissing},
		{"1 NOP", ErrOpcodeInvalid},
		{"1 mov R1, 5", ErrOpcodeInvalid},
		{"1 HALT", ErrOpcodeInvalid},
		{"7 ADD R1", ErrOpcodeValueMissing},
		{"1 MOV", ErrOpcodeValueMissing},
		{"1 JE", ErrOpcodeValueMissing},
		{"1 JMP", ErrOpcodeValueMissing},
		{"1 LD R1", ErrOpcodeValueMissing},
		{"1 ST [R1]", ErrOpcodeValueMissing},
		{"1 CMP R1", ErrOpcodeValueMissing},
		{"1 MOV R1, 5, 6", ErrOpcodeExtraArgs},
		{"1 JE 4 5", ErrOpcodeExtraArgs},
		{"1 JMP 4, R1", ErrOpcodeExtraArgs},
		{"1 MOV R0, 5", ErrRegisterInvalid},
		{"1 MOV R7, 5", ErrRegisterInvalid},
		{"1 MOV R, 5", ErrRegisterInvalid},
		{"1 MOV R12, 5", ErrRegisterInvalid},
		{"1 MOV r1, 5", ErrRegisterInvalid},
		{"1 MOV 5, R1", ErrRegisterInvalid},
		{"1 ADD R1, R9", ErrRegisterInvalid},
		{"1 CMP R1, 3", ErrRegisterInvalid},
		{"1 LD R1, [X]", ErrRegisterInvalid},
		{"1 ST [R1], 4", ErrRegisterInvalid},
		{"1 MOV R1, 128", ErrImmediateRange},
		{"1 MOV R1, -129", ErrImmediateRange},
		{"1 ADD R1, 1000", ErrImmediateRange},
		{"1 JE -1", ErrTargetInvalid},
		{"1 JMP -20", ErrTargetInvalid},
	}

	for _, entry := range table {
		_, err := ParseLine(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
	}

	// Unparsable numbers
	numbers := []string{
		"X MOV R1, 5",
		"1 MOV R1, five",
		"1 MOV R1, 0x10",
		"1 ADD R1, 1.5",
		"1 JE here",
		"1 JMP 1e3",
	}

	for _, line := range numbers {
		_, err := ParseLine(line)
		var pn ErrParseNumber
		assert.True(errors.As(err, &pn), line)
	}
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1 MOV R1, 5",
		"",
		"   ",
		"2 MOV R2, 5\r",
		"\t",
		"3 CMP R1, R2",
	}

	p := &Parser{}
	prog, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(3, len(prog.Instructions))
	assert.Equal([]int{1, 4, 6}, []int{
		prog.Instructions[0].SourceLine,
		prog.Instructions[1].SourceLine,
		prog.Instructions[2].SourceLine,
	})
	// The scanner drops the carriage return of a DOS line ending.
	assert.Equal("2 MOV R2, 5", prog.Instructions[1].Text)

	// Parser state is reset by every Parse.
	prog, err = p.Parse(strings.NewReader("9 JMP 9\n"))
	assert.NoError(err)
	assert.Equal(1, len(prog.Instructions))
	assert.Equal(OP_JMP, prog.Instructions[0].Op)
}

func TestParserEmpty(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := p.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))
}

func TestParserErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
		text string
	}){
		{"7 ADD R1", 1, "7 ADD R1"},
		{"1 MOV R1, 5\n2 MOV R2, 6\n3 BAD\n4 MOV R3, 1", 3, "3 BAD"},
		{"1 MOV R1, 5\n\n\n4 JE 1 2\n", 4, "4 JE 1 2"},
		{"1 MOV R1, 5\nR1 MOV R2, 5\n", 2, "R1 MOV R2, 5"},
		{"1 LD R1, [R7]\n", 1, "1 LD R1, [R7]"},
	}

	for _, entry := range table {
		p := &Parser{}
		prog, err := p.Parse(strings.NewReader(entry.prog))
		assert.Nil(prog, entry.prog)
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			assert.Equal(entry.text, se.Line, entry.prog)
		}
	}
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"1 MOV R1, 5",
		"2 ADD R1, R2",
		"3 ADD R6, -1",
		"4 CMP R1, R2",
		"5 JE 1",
		"6 JMP 99",
		"7 LD R3, [R4]",
		"8 ST [R4], R3",
	}

	for _, line := range table {
		ins, err := ParseLine(line)
		assert.NoError(err, line)
		assert.Equal(line, ins.String())
	}
}
