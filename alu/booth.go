package alu

import (
	"github.com/ezrec/arith/bitvec"
)

const (
	BOOTH_DEFAULT_WIDTH = 4 // Default Booth register width.
)

// booth is the (A, Q, Q-1) shift register and multiplicand of a Booth
// multiplication.
//
// A and M carry one guard bit above the register width so that A - M
// cannot overflow when M is the most negative value. Snapshots and the
// product only show the low width bits of A.
type booth struct {
	width int
	a     bitvec.Vector
	q     bitvec.Vector
	q_1   bitvec.Bit
	m     bitvec.Vector
}

func (b *booth) step(index int, action Action) Step {
	return Step{
		Index:  index,
		Action: action,
		Registers: []Register{
			{Name: REG_A, Value: b.a.Truncate(b.width)},
			{Name: REG_Q, Value: b.q},
			{Name: REG_Q_1, Value: bitvec.FromBits([]bitvec.Bit{b.q_1})},
			{Name: REG_M, Value: b.m.Truncate(b.width)},
		},
	}
}

// recode inspects (Q0, Q-1) and adds or subtracts M from A.
func (b *booth) recode() (action Action) {
	guard := b.width + 1

	switch {
	case b.q.LSB() == bitvec.BIT_1 && b.q_1 == bitvec.BIT_0:
		b.a = Subtract(b.a, b.m)
		action = ACTION_SUB
	case b.q.LSB() == bitvec.BIT_0 && b.q_1 == bitvec.BIT_1:
		b.a = Add(b.a, b.m).Truncate(guard)
		action = ACTION_ADD
	default:
		action = ACTION_NONE
	}

	return
}

// shift arithmetic right shifts (A, Q, Q-1) by one bit.
// The sign of A is replicated into its MSB, the LSB of A moves into the
// MSB of Q, and the LSB of Q moves into Q-1.
func (b *booth) shift() {
	var lost bitvec.Bit
	b.a, lost = b.a.ShiftRight(b.a.MSB())
	b.q, b.q_1 = b.q.ShiftRight(lost)
}

// BoothMultiply multiplies the two's complement values m and q held in
// width bit registers. Operands narrower than width are zero padded.
//
// The multiplier always runs exactly width iterations. The product is the
// 2*width bit concatenation of A and Q. The trace holds the initial
// registers, then the registers after each iteration's shift.
func BoothMultiply(m, q bitvec.Vector, width int) (res Result, err error) {
	if width < 1 {
		err = ErrWidthInvalid
		return
	}

	for _, operand := range []bitvec.Vector{m, q} {
		if operand.Width() > width {
			err = ErrWidthMismatch{Operand: operand.String(), Width: width}
			return
		}
	}

	guard := width + 1

	b := &booth{
		width: width,
		a:     bitvec.Zero(guard),
		q:     q.PadLeft(width),
		q_1:   bitvec.BIT_0,
		m:     m.PadLeft(width).SignExtend(guard),
	}

	res.Trace = append(res.Trace, b.step(0, ACTION_INIT))

	for n := range width {
		action := b.recode()
		b.shift()
		res.Trace = append(res.Trace, b.step(n+1, action))
		res.Iterations++
	}

	res.Product = bitvec.Concat(b.a.Truncate(width), b.q)

	return
}
