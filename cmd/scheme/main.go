// Command scheme is the CLI driver for the evaluator core: it starts an
// interactive REPL by default, or evaluates a single expression or
// source file given the right flag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/scheme/pkg/primitives"
	"github.com/leinonen/scheme/pkg/repl"
	"github.com/leinonen/scheme/pkg/types"
)

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		eval     = flag.String("e", "", "Evaluate an expression directly instead of reading from a file")
		filename = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                   start the interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f program.scm    run a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'    evaluate an expression\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	frame := primitives.NewGlobalFrame()

	if *eval != "" {
		result, err := repl.EvalString(*eval, frame)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !types.IsOkay(result) {
			fmt.Println(result.String())
		}
		return
	}

	target := *filename
	if target == "" && len(flag.Args()) > 0 {
		target = flag.Args()[0]
	}
	if target != "" {
		if err := repl.LoadFile(target, frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := repl.Run(frame); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
