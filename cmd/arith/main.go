// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.starlark.net/starlark"

	"github.com/ezrec/arith/alu"
	"github.com/ezrec/arith/script"
	"github.com/ezrec/arith/unit"
)

func main() {
	var width int
	var expr string
	var exec string
	var trace bool
	var verbose bool

	flag.IntVar(&width, "w", alu.BOOTH_DEFAULT_WIDTH, "Booth register width in bits")
	flag.StringVar(&expr, "e", "", "Starlark expression to evaluate")
	flag.StringVar(&exec, "x", "", ".star script to execute")
	flag.BoolVar(&trace, "t", false, "Print multiplier steps")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	u := unit.NewUnit()
	u.Width = width
	u.Verbose = verbose

	sc := script.NewScript(os.Stdout)
	sc.Unit = u

	switch {
	case len(expr) != 0:
		value, err := sc.Eval(expr)
		if err != nil {
			log.Fatalf("%v: %v", expr, err)
		}
		if str, ok := starlark.AsString(value); ok {
			fmt.Println(str)
		} else {
			fmt.Println(value)
		}
	case len(exec) != 0:
		src, err := os.ReadFile(exec)
		if err != nil {
			log.Fatalf("%v: %v", exec, err)
		}
		_, err = sc.Exec(exec, src)
		if err != nil {
			log.Fatalf("%v: %v", exec, err)
		}
	case flag.NArg() == 3:
		op, err := unit.ParseOp(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		err = report(os.Stdout, u, op, flag.Arg(1), flag.Arg(2), trace)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	case flag.NArg() == 0:
		err := menu(os.Stdin, os.Stdout, u)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	default:
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}
}
