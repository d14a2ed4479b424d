package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/arith/translate"
	"github.com/ezrec/arith/unit"
)

var fprintf = translate.Fprintf

// report performs one operation and prints its result. The trace is
// printed first when requested.
func report(out io.Writer, u *unit.Unit, op unit.Op, a, b string, trace bool) (err error) {
	res, err := u.Execute(op, a, b)
	if err != nil {
		return
	}

	if trace {
		for _, step := range res.Trace {
			fprintf(out, "%v\n", step)
		}
	}

	value := res.Product.Value()
	if op == unit.OP_BOOTH {
		value = res.Product.SignedValue()
	}

	fprintf(out, "Result: %v (%v)\n", res.Product, value.String())

	return
}

// menu runs the interactive numbered menu: choose an operation, enter two
// binary operands, see the result. Multiplications always show their steps.
func menu(in io.Reader, out io.Writer, u *unit.Unit) (err error) {
	scanner := bufio.NewScanner(in)
	readLine := func() string {
		if scanner.Scan() {
			return strings.TrimSpace(scanner.Text())
		}
		return ""
	}

	fprintf(out, "=== Arithmetic Unit Simulator ===\n")
	for n, op := range unit.Ops() {
		fprintf(out, "%d. %v\n", n+1, op.Title())
	}

	fprintf(out, "Enter your choice (1-%d): ", len(unit.Ops()))
	op, err := unit.ParseOp(readLine())
	if err != nil {
		fprintf(out, "Invalid choice!\n")
		err = scanner.Err()
		return
	}

	var first, second string
	switch op {
	case unit.OP_ADD, unit.OP_SUB:
		first = translate.From("Enter first binary number: ")
		second = translate.From("Enter second binary number: ")
	case unit.OP_MUL:
		first = translate.From("Enter multiplicand (binary): ")
		second = translate.From("Enter multiplier (binary): ")
	case unit.OP_BOOTH:
		first = translate.From("Enter multiplicand (%d-bit binary): ", u.Width)
		second = translate.From("Enter multiplier (%d-bit binary): ", u.Width)
	}

	fprintf(out, "%v", first)
	a := readLine()
	fprintf(out, "%v", second)
	b := readLine()
	if err = scanner.Err(); err != nil {
		return
	}

	trace := op == unit.OP_MUL || op == unit.OP_BOOTH
	if trace {
		fprintf(out, "\n%v Steps:\n", op.Title())
	}

	return report(out, u, op, a, b, trace)
}
