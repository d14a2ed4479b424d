package alu

import (
	"errors"

	"github.com/ezrec/arith/translate"
)

var f = translate.From

var (
	// Multiplier errors
	ErrWidthInvalid = errors.New(f("register width must be at least one bit"))
)

// ErrWidthMismatch reports an operand wider than the register width.
type ErrWidthMismatch struct {
	Operand string
	Width   int
}

func (err ErrWidthMismatch) Error() string {
	return f("operand '%v' exceeds %d bit register", err.Operand, err.Width)
}

func (err ErrWidthMismatch) Is(target error) (ok bool) {
	_, ok = target.(ErrWidthMismatch)
	return
}
