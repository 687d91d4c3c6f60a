package cpu

import (
	"errors"

	"github.com/ezrec/myiss/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
)

// ErrSyntax locates a parse failure in the input stream.
type ErrSyntax struct {
	LineNo int    // Physical line in the input, starting at 1.
	Line   string // Raw text of the line.
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}
