package unit

import (
	"strconv"
)

// Op is an arithmetic unit operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD   = Op(0) // add
	OP_SUB   = Op(1) // sub
	OP_MUL   = Op(2) // mul
	OP_BOOTH = Op(3) // booth
)

var _ops = []Op{OP_ADD, OP_SUB, OP_MUL, OP_BOOTH}

// Ops returns all operations, in menu order.
func Ops() []Op {
	return append([]Op(nil), _ops...)
}

// Title is the menu title of the operation.
func (op Op) Title() (title string) {
	switch op {
	case OP_ADD:
		title = f("Addition")
	case OP_SUB:
		title = f("Subtraction")
	case OP_MUL:
		title = f("Shift-and-Add Multiplication")
	case OP_BOOTH:
		title = f("Booth's Multiplication")
	default:
		title = op.String()
	}
	return
}

// ParseOp parses an operation name, or its 1-based menu number.
func ParseOp(name string) (op Op, err error) {
	for _, op = range _ops {
		if name == op.String() || name == strconv.Itoa(int(op)+1) {
			return
		}
	}

	op = Op(-1)
	err = ErrOpUnknown(name)
	return
}
