// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package unit is the arithmetic unit: bit string operands in, bit string
// results and multiplier traces out.
package unit

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/arith/alu"
	"github.com/ezrec/arith/bitvec"
)

var _unit_defines = map[string]string{
	"BOOTH_DEFAULT_WIDTH": fmt.Sprintf("%v", alu.BOOTH_DEFAULT_WIDTH),
	"OP_ADD":              OP_ADD.String(),
	"OP_SUB":              OP_SUB.String(),
	"OP_MUL":              OP_MUL.String(),
	"OP_BOOTH":            OP_BOOTH.String(),
}

// Unit is the arithmetic unit configuration. It holds no register state
// between operations, so a Unit may be shared by concurrent callers.
type Unit struct {
	Verbose bool // If set, enables verbose logging.
	Width   int  // Booth register width, in bits.
}

// NewUnit creates a new arithmetic unit with the default Booth width.
func NewUnit() (u *Unit) {
	u = &Unit{
		Width: alu.BOOTH_DEFAULT_WIDTH,
	}

	return
}

// Defines returns an iterator over the unit's named constants.
func (u *Unit) Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_unit_defines)
	defines["BOOTH_WIDTH"] = fmt.Sprintf("%v", u.Width)

	return maps.All(defines)
}

// Execute performs an operation on two bit string operands.
// Add and subtract results carry no trace.
func (u *Unit) Execute(op Op, a, b string) (res alu.Result, err error) {
	defer func() {
		if err != nil {
			err = &ErrOperation{Op: op, Err: err}
		}
	}()

	if u.Verbose {
		log.Printf("unit: %v %v %v", op, a, b)
	}

	av, err := bitvec.Parse(a)
	if err != nil {
		return
	}

	bv, err := bitvec.Parse(b)
	if err != nil {
		return
	}

	switch op {
	case OP_ADD:
		res.Product = alu.Add(av, bv)
	case OP_SUB:
		res.Product = alu.Subtract(av, bv)
	case OP_MUL:
		res = alu.ShiftAddMultiply(av, bv)
	case OP_BOOTH:
		res, err = alu.BoothMultiply(av, bv, u.Width)
		if err != nil {
			return
		}
	default:
		err = ErrOpUnknown(op.String())
		return
	}

	if u.Verbose {
		for _, step := range res.Trace {
			log.Printf("unit: %v", step)
		}
		log.Printf("unit: %v result %v", op, res.Product)
	}

	return
}

// Add returns a + b. The sum is one bit wider than the operands on carry.
func (u *Unit) Add(a, b string) (sum string, err error) {
	res, err := u.Execute(OP_ADD, a, b)
	if err != nil {
		return
	}

	sum = res.Product.String()
	return
}

// Subtract returns a - b, wrapped to the operand width.
func (u *Unit) Subtract(a, b string) (diff string, err error) {
	res, err := u.Execute(OP_SUB, a, b)
	if err != nil {
		return
	}

	diff = res.Product.String()
	return
}

// ShiftAddMultiply returns the unsigned product m * q and its trace.
func (u *Unit) ShiftAddMultiply(m, q string) (product string, trace []alu.Step, err error) {
	res, err := u.Execute(OP_MUL, m, q)
	if err != nil {
		return
	}

	product = res.Product.String()
	trace = res.Trace
	return
}

// BoothMultiply returns the signed product m * q, 2*Width bits wide, and
// its trace.
func (u *Unit) BoothMultiply(m, q string) (product string, trace []alu.Step, err error) {
	res, err := u.Execute(OP_BOOTH, m, q)
	if err != nil {
		return
	}

	product = res.Product.String()
	trace = res.Trace
	return
}
