package mix

import (
	"strconv"

	"github.com/ezrec/mixvm/translate"
)

var f = translate.From

var (
	ErrOutOfRange      = translate.NewError("address out of range")
	ErrIndexOutOfRange = translate.NewError("index register out of range")
	ErrDivideByZero    = translate.NewError("divide by zero")
	ErrProgramTooLarge = translate.NewError("program too large")
	ErrUnknownOpcode   = translate.NewError("unknown opcode")
)

// itoa renders numbers without locale digit grouping.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// ErrAddress is a memory or location address outside of memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %s out of range [0, %s)", itoa(int(ea)), itoa(MEMORY_SIZE))
}

func (ea ErrAddress) Unwrap() error {
	return ErrOutOfRange
}

// ErrIndex is an index register selector outside of I1-I6.
type ErrIndex int

func (ei ErrIndex) Error() string {
	return f("index register %s out of range [0, %s)", itoa(int(ei)), itoa(INDEX_COUNT))
}

func (ei ErrIndex) Unwrap() error {
	return ErrIndexOutOfRange
}

// ErrDivisor is the address of a zero divisor.
type ErrDivisor int

func (ed ErrDivisor) Error() string {
	return f("divide by zero at address %s", itoa(int(ed)))
}

func (ed ErrDivisor) Unwrap() error {
	return ErrDivideByZero
}

// ErrProgramSize is the length of a program that does not fit in memory.
type ErrProgramSize int

func (ep ErrProgramSize) Error() string {
	return f("program of %s words exceeds %s words of memory", itoa(int(ep)), itoa(MEMORY_SIZE))
}

func (ep ErrProgramSize) Unwrap() error {
	return ErrProgramTooLarge
}

// ErrOpcode is an undefined opcode word.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("unknown opcode %s", itoa(int(eo)))
}

func (eo ErrOpcode) Unwrap() error {
	return ErrUnknownOpcode
}
