package cpu

// Status is the machine condition. Execution proceeds only while the
// status is STATUS_OK; every other value latches until Reset.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_OK                      = Status(0) // ok
	STATUS_HALTED                  = Status(1) // halted
	STATUS_ILLEGAL_INSTRUCTION     = Status(2) // illegal instruction
	STATUS_ILLEGAL_OPERAND         = Status(3) // illegal operand
	STATUS_DIV_BY_ZERO             = Status(4) // division by zero
	STATUS_INVALID_ADDRESS         = Status(5) // invalid address
	STATUS_INVALID_STACK_OPERATION = Status(6) // invalid stack operation
	STATUS_IO_ERROR                = Status(7) // io error
)

// Err returns the sentinel error corresponding to the status, or nil for
// STATUS_OK.
func (status Status) Err() error {
	switch status {
	case STATUS_OK:
		return nil
	case STATUS_HALTED:
		return ErrHalted
	case STATUS_ILLEGAL_INSTRUCTION:
		return ErrIllegalInstruction
	case STATUS_ILLEGAL_OPERAND:
		return ErrIllegalOperand
	case STATUS_DIV_BY_ZERO:
		return ErrDivisionByZero
	case STATUS_INVALID_ADDRESS:
		return ErrInvalidAddress
	case STATUS_INVALID_STACK_OPERATION:
		return ErrInvalidStackOperation
	case STATUS_IO_ERROR:
		return ErrIo
	}

	panic("unknown status")
}
