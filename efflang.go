// Package efflang wires the full pipeline into the core's one entry point:
// parse, desugar, merge with the prelude, check, interpret.
package efflang

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/checker"
	"github.com/efflang/efflang/desugar"
	"github.com/efflang/efflang/interp"
	"github.com/efflang/efflang/parser"
	"github.com/efflang/efflang/prelude"
)

// Interpret runs the complete pipeline over source bytes: lex, parse,
// desugar, merge with the prelude, check, and evaluate main().
// It also returns the checked Program, since the CLI's value printer needs
// struct field declaration order that a bare Value doesn't carry.
func Interpret(filename string, src []byte) (*checker.Program, interp.Value, error) {
	defns, err := parser.Parse(filename, src)
	if err != nil {
		return nil, interp.Value{}, err
	}

	defns = desugar.Defns(defns)

	all := make([]ast.TopDefn, 0, len(prelude.Defns())+len(defns))
	all = append(all, prelude.Defns()...)
	all = append(all, defns...)

	prog, err := checker.Check(all)
	if err != nil {
		return nil, interp.Value{}, err
	}

	v, err := interp.Run(prog)
	return prog, v, err
}

// Sprint renders a Value the way the CLI prints a successful run's result
//.
func Sprint(prog *checker.Program, v interp.Value) string {
	return interp.Sprint(prog, v)
}
