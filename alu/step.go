package alu

import (
	"fmt"
	"strings"

	"github.com/ezrec/arith/bitvec"
)

// Action is the register operation taken during a multiplier iteration.
type Action int

//go:generate go tool stringer -linecomment -type=Action
const (
	ACTION_INIT = Action(0) // init
	ACTION_NONE = Action(1) // none
	ACTION_ADD  = Action(2) // add
	ACTION_SUB  = Action(3) // sub
)

// Register names used in step snapshots.
const (
	REG_A       = "A"   // Booth accumulator.
	REG_Q       = "Q"   // Multiplier register.
	REG_Q_1     = "Q-1" // Booth extension bit.
	REG_M       = "M"   // Multiplicand.
	REG_PRODUCT = "P"   // Shift-and-add product.
)

// Register is a named register value in a Step snapshot.
type Register struct {
	Name  string
	Value bitvec.Vector
}

// Step is an immutable snapshot of the multiplier registers after one
// iteration.
type Step struct {
	Index     int
	Action    Action
	Registers []Register
}

// Register looks up a register value by name.
func (step Step) Register(name string) (value bitvec.Vector, ok bool) {
	for _, reg := range step.Registers {
		if reg.Name == name {
			return reg.Value, true
		}
	}
	return
}

// String renders the step, registers in snapshot order.
func (step Step) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "step %d: %v", step.Index, step.Action)
	for _, reg := range step.Registers {
		fmt.Fprintf(&sb, " %v=%v", reg.Name, reg.Value)
	}
	return sb.String()
}

// Result of a multiplication.
type Result struct {
	Product    bitvec.Vector
	Trace      []Step
	Iterations int
}
