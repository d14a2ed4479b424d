// Package script exposes the arithmetic unit to Starlark programs.
//
// Builtins:
//
//	add(a, b)                  -> sum bit string
//	sub(a, b)                  -> difference bit string
//	mul(m, q)                  -> unsigned product bit string
//	booth(m, q, width=W)       -> signed product bit string
//	mul_trace(m, q)            -> list of step strings
//	booth_trace(m, q, width=W) -> list of step strings
//	value(s)                   -> unsigned int of a bit string
//	signed(s)                  -> two's complement int of a bit string
//
// The unit's defines (BOOTH_WIDTH, OP_ADD, ...) are predeclared.
package script

import (
	"fmt"
	"io"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/arith/alu"
	"github.com/ezrec/arith/bitvec"
	"github.com/ezrec/arith/unit"
)

// Script is a Starlark environment bound to an arithmetic unit.
type Script struct {
	Unit   *unit.Unit // Arithmetic unit used by the builtins.
	Output io.Writer  // Destination of print(); discarded if nil.
}

// NewScript creates a script environment with a default unit.
func NewScript(output io.Writer) (sc *Script) {
	sc = &Script{
		Unit:   unit.NewUnit(),
		Output: output,
	}

	return
}

func (sc *Script) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if sc.Output != nil {
				fmt.Fprintln(sc.Output, msg)
			}
		},
	}
}

// Predeclared returns the builtins and defines visible to scripts.
func (sc *Script) Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	for key, str := range sc.Unit.Defines() {
		if value, err := strconv.Atoi(str); err == nil {
			pred[key] = starlark.MakeInt(value)
		} else {
			pred[key] = starlark.String(str)
		}
	}

	builtins := map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
		"add":         sc.binary(unit.OP_ADD),
		"sub":         sc.binary(unit.OP_SUB),
		"mul":         sc.binary(unit.OP_MUL),
		"booth":       sc.booth(false),
		"mul_trace":   sc.mulTrace,
		"booth_trace": sc.booth(true),
		"value":       sc.value(false),
		"signed":      sc.value(true),
	}
	for name, fn := range builtins {
		pred[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

// Exec runs a Starlark program, returning its globals.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	opts := syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
	}
	globals, err = starlark.ExecFileOptions(&opts, sc.thread(filename), filename, src, sc.Predeclared())
	return
}

// Eval evaluates a single Starlark expression.
func (sc *Script) Eval(expr string) (value starlark.Value, err error) {
	prog := "rc=" + expr + "\n"
	dict, err := sc.Exec("expr", prog)
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

func (sc *Script) binary(op unit.Op) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var a, c string
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &a, &c); err != nil {
			return nil, err
		}

		res, err := sc.Unit.Execute(op, a, c)
		if err != nil {
			return nil, err
		}

		return starlark.String(res.Product.String()), nil
	}
}

func (sc *Script) mulTrace(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var m, q string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &m, &q); err != nil {
		return nil, err
	}

	_, trace, err := sc.Unit.ShiftAddMultiply(m, q)
	if err != nil {
		return nil, err
	}

	return traceList(trace), nil
}

// booth binds booth() and booth_trace(). An explicit width overrides the
// unit's width for that call only.
func (sc *Script) booth(trace bool) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var m, q string
		width := sc.Unit.Width
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "m", &m, "q", &q, "width?", &width); err != nil {
			return nil, err
		}

		u := *sc.Unit
		u.Width = width

		product, steps, err := u.BoothMultiply(m, q)
		if err != nil {
			return nil, err
		}

		if trace {
			return traceList(steps), nil
		}

		return starlark.String(product), nil
	}
}

func (sc *Script) value(signed bool) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var s string
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
			return nil, err
		}

		v, err := bitvec.Parse(s)
		if err != nil {
			return nil, err
		}

		if signed {
			return starlark.MakeBigInt(v.SignedValue()), nil
		}

		return starlark.MakeBigInt(v.Value()), nil
	}
}

func traceList(trace []alu.Step) *starlark.List {
	elems := make([]starlark.Value, 0, len(trace))
	for _, step := range trace {
		elems = append(elems, starlark.String(step.String()))
	}

	return starlark.NewList(elems)
}
