package script

import (
	"github.com/ezrec/arith/translate"
)

var f = translate.From

// ErrExpression reports an expression that yields no value.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
