package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/efflang/efflang"
	"github.com/efflang/efflang/checker"
	"github.com/efflang/efflang/interp"
	"github.com/efflang/efflang/parser"
	isatty "github.com/mattn/go-isatty"
	cli "github.com/urfave/cli/v2"
)

// workerStackBytes is the dedicated stack size the pipeline runs on, since
// the tree-walking interpreter recurses once per AST node and a deeply
// nested program can exceed the default goroutine stack.
const workerStackBytes = 180 << 20

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "evaluate a source file",
	ArgsUsage: "<file>",
	Description: runHelp,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dump-cst",
			Usage: "print the parsed CST of every top-level definition before checking",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit("run requires exactly one file argument", 1)
		}
		filename := c.Args().First()
		src, err := os.ReadFile(filename)
		if err != nil {
			return cli.Exit(err, 1)
		}

		color := newColor(isatty.IsTerminal(os.Stdout.Fd()))

		if c.Bool("dump-cst") {
			defns, err := parser.Parse(filename, src)
			if err != nil {
				return cli.Exit(displayError(color, err), 1)
			}
			for _, d := range defns {
				fmt.Fprintln(os.Stdout, dumpTopDefn(d).String())
			}
		}

		prog, v, err := runWithLargeStack(filename, src)
		if err != nil {
			fmt.Fprintln(os.Stderr, displayError(color, err))
			return cli.Exit("", 1)
		}

		fmt.Fprintln(os.Stdout, efflang.Sprint(prog, v))
		return nil
	},
}

// runWithLargeStack runs Interpret on a goroutine whose stack is raised to
// workerStackBytes, mirroring how interpreter-style hosts elsewhere in the
// pack isolate deep recursion from the default goroutine stack.
func runWithLargeStack(filename string, src []byte) (*checker.Program, interp.Value, error) {
	prev := debug.SetMaxStack(workerStackBytes)
	defer debug.SetMaxStack(prev)

	type out struct {
		prog *checker.Program
		v    interp.Value
		err  error
	}
	done := make(chan out, 1)
	go func() {
		prog, v, err := efflang.Interpret(filename, src)
		done <- out{prog: prog, v: v, err: err}
	}()
	o := <-done
	return o.prog, o.v, o.err
}
