package alu

import (
	"github.com/ezrec/arith/bitvec"
)

// Negate returns the two's complement of b at b's width.
func Negate(b bitvec.Vector) bitvec.Vector {
	width := b.Width()
	return Add(b.Invert(), bitvec.One(width)).Truncate(width)
}

// Subtract b from a by adding the two's complement of b.
// The operands are zero padded to the same width, and the difference
// wraps modulo 2^width: any carry out of the final addition is dropped.
func Subtract(a, b bitvec.Vector) (diff bitvec.Vector) {
	a, b = bitvec.Normalize(a, b)

	width := a.Width()
	diff = Add(a, Negate(b)).Truncate(width)

	return
}
