package alu

import (
	"github.com/ezrec/arith/bitvec"
)

// fullAdder adds two bits and a carry in.
func fullAdder(a, b, cin bitvec.Bit) (sum, cout bitvec.Bit) {
	sum = a ^ b ^ cin
	cout = (a & b) | (a & cin) | (b & cin)
	return
}

// Add a and b with a ripple carry from the LSB up.
// The operands are zero padded to the same width. A carry out of the MSB
// is kept, so the sum may be one bit wider than the operands.
func Add(a, b bitvec.Vector) (sum bitvec.Vector) {
	a, b = bitvec.Normalize(a, b)

	width := a.Width()
	bits := make([]bitvec.Bit, width)

	carry := bitvec.BIT_0
	for n := width - 1; n >= 0; n-- {
		bits[n], carry = fullAdder(a.Bit(n), b.Bit(n), carry)
	}

	sum = bitvec.FromBits(bits)
	if carry == bitvec.BIT_1 {
		sum = bitvec.Concat(bitvec.One(1), sum)
	}

	return
}
