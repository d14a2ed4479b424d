package bitvec

import (
	"errors"

	"github.com/ezrec/arith/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrEmptyOperand = errors.New(f("empty operand"))
)

// ErrInvalidCharacter reports a non-binary digit in an operand.
type ErrInvalidCharacter struct {
	Operand string
	Index   int
	Char    rune
}

func (err ErrInvalidCharacter) Error() string {
	return f("operand '%v' has invalid character %q at %d", err.Operand, err.Char, err.Index)
}

func (err ErrInvalidCharacter) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidCharacter)
	return
}
