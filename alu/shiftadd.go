package alu

import (
	"github.com/ezrec/arith/bitvec"
)

// ShiftAddMultiply multiplies the unsigned values m and q.
//
// While the multiplier has bits left, its LSB selects whether the
// multiplicand is added into the product; then the multiplicand shifts
// left and the multiplier shifts right.
//
// The product register is as wide as the significant bits of m plus those
// of q, which always holds the product. Only iterations that added to the
// product are recorded in the trace.
func ShiftAddMultiply(m, q bitvec.Vector) (res Result) {
	m = m.Significant()
	q = q.Significant()

	width := m.Width() + q.Width()

	product := bitvec.Zero(width)
	mcand := m.PadLeft(width)
	mplier := q

	for !mplier.IsZero() {
		if mplier.LSB() == bitvec.BIT_1 {
			product = Add(product, mcand).Truncate(width)
			res.Trace = append(res.Trace, Step{
				Index:  res.Iterations,
				Action: ACTION_ADD,
				Registers: []Register{
					{Name: REG_PRODUCT, Value: product},
					{Name: REG_M, Value: mcand},
					{Name: REG_Q, Value: mplier},
				},
			})
		}

		mcand, _ = mcand.ShiftLeft(bitvec.BIT_0)
		mplier, _ = mplier.ShiftRight(bitvec.BIT_0)
		res.Iterations++
	}

	res.Product = product

	return
}
