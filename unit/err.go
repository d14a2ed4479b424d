package unit

import (
	"github.com/ezrec/arith/translate"
)

var f = translate.From

// ErrOpUnknown reports an unknown operation name.
type ErrOpUnknown string

func (err ErrOpUnknown) Error() string {
	return f("operation '%v' unknown", string(err))
}

// ErrOperation indicates the operation that failed.
type ErrOperation struct {
	Op  Op
	Err error
}

func (err *ErrOperation) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrOperation) Unwrap() error {
	return err.Err
}
