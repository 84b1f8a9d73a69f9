package cpu

import (
	"errors"

	"github.com/ezrec/ucpu/translate"
)

var f = translate.From

var (
	// Machine status errors
	ErrHalted                = errors.New(f("halted"))
	ErrIllegalInstruction    = errors.New(f("illegal instruction"))
	ErrIllegalOperand        = errors.New(f("illegal operand"))
	ErrDivisionByZero        = errors.New(f("division by zero"))
	ErrInvalidAddress        = errors.New(f("invalid address"))
	ErrInvalidStackOperation = errors.New(f("invalid stack operation"))
	ErrIo                    = errors.New(f("io error"))

	// Loader errors
	ErrTruncatedProgram = errors.New(f("program is not a whole number of words"))
	ErrStackCapacity    = errors.New(f("stack capacity invalid"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
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

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a single character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
