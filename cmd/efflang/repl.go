package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/logrusorgru/aurora"
	isatty "github.com/mattn/go-isatty"
	cli "github.com/urfave/cli/v2"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/checker"
	"github.com/efflang/efflang/desugar"
	"github.com/efflang/efflang/interp"
	"github.com/efflang/efflang/parser"
	"github.com/efflang/efflang/prelude"
)

var replCommand = &cli.Command{
	Name:        "repl",
	Usage:       "start an interactive session",
	Description: replHelp,
	Action: func(c *cli.Context) error {
		return runRepl(os.Stdin, os.Stdout, os.Stderr)
	},
}

// session is the repl's accumulated, desugared program. It is rechecked
// from scratch after every accepted definition, since the checker has no
// notion of incremental invalidation.
type session struct {
	defns   []ast.TopDefn
	lastDef *ast.TopDefn
}

func runRepl(stdin io.ReadCloser, stdout, stderr io.Writer) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt: "efflang> ",
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	color := newColor(isatty.IsTerminal(os.Stdout.Fd()))
	sess := &session{}

	for {
		line, err := l.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			args, err := shellquote.Split(line[1:])
			if err != nil {
				fmt.Fprintln(stderr, displayError(color, err))
				continue
			}
			if len(args) == 0 {
				continue
			}
			if done := sess.meta(args[0], args[1:], stdout, stderr, color); done {
				return nil
			}
			continue
		}

		sess.evalLine(line, stdout, stderr, color)
	}
}

func (s *session) meta(cmd string, args []string, stdout, stderr io.Writer, color aurora.Aurora) bool {
	switch cmd {
	case "quit":
		return true
	case "load":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "usage: :load <file>")
			return false
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(stderr, displayError(color, err))
			return false
		}
		defns, err := parser.Parse(args[0], src)
		if err != nil {
			fmt.Fprintln(stderr, displayError(color, err))
			return false
		}
		for _, d := range defns {
			d := desugar.Defn(d)
			s.defns = append(s.defns, d)
			s.lastDef = &d
		}
		s.checkAndRun(stdout, stderr, color)
	case "type":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "usage: :type <expr>")
			return false
		}
		e, err := parser.ParseExpr("<repl>", []byte(args[0]))
		if err != nil {
			fmt.Fprintln(stderr, displayError(color, err))
			return false
		}
		e = desugar.Expr(e)
		prog, err := s.program()
		if err != nil {
			fmt.Fprintln(stderr, displayError(color, err))
			return false
		}
		t, eff, err := checker.TypeOfExpr(prog, e)
		if err != nil {
			fmt.Fprintln(stderr, displayError(color, err))
			return false
		}
		fmt.Fprintln(stdout, t.String(), "!", effectSetString(eff))
	case "dump-cst":
		if s.lastDef == nil {
			fmt.Fprintln(stderr, "nothing parsed yet")
			return false
		}
		fmt.Fprintln(stdout, dumpTopDefn(*s.lastDef).String())
	default:
		fmt.Fprintf(stderr, "unknown meta-command :%s\n", cmd)
	}
	return false
}

func (s *session) evalLine(line string, stdout, stderr io.Writer, color aurora.Aurora) {
	d, err := parser.Parse("<repl>", []byte(line))
	if err != nil {
		fmt.Fprintln(stderr, displayError(color, err))
		return
	}
	if len(d) != 1 {
		fmt.Fprintln(stderr, "enter exactly one definition at a time")
		return
	}
	defn := desugar.Defn(d[0])

	// Validate against the session so far, plus this definition, before
	// committing it; a bad definition must not poison future input.
	candidate := append(append([]ast.TopDefn{}, s.defns...), defn)
	if _, err := checker.CheckOpen(withPrelude(candidate)); err != nil {
		fmt.Fprintln(stderr, displayError(color, err))
		return
	}

	s.defns = candidate
	s.lastDef = &defn
	s.checkAndRun(stdout, stderr, color)
}

// checkAndRun rechecks the whole session and, if main is present and well
// formed, evaluates it and prints the result.
func (s *session) checkAndRun(stdout, stderr io.Writer, color aurora.Aurora) {
	prog, err := checker.CheckOpen(withPrelude(s.defns))
	if err != nil {
		fmt.Fprintln(stderr, displayError(color, err))
		return
	}
	if _, ok := prog.Fns["main"]; !ok {
		return
	}
	full, err := checker.Check(withPrelude(s.defns))
	if err != nil {
		fmt.Fprintln(stderr, displayError(color, err))
		return
	}
	v, err := interp.Run(full)
	if err != nil {
		fmt.Fprintln(stderr, displayError(color, err))
		return
	}
	fmt.Fprintln(stdout, interp.Sprint(full, v))
}

func (s *session) program() (*checker.Program, error) {
	return checker.CheckOpen(withPrelude(s.defns))
}

func withPrelude(defns []ast.TopDefn) []ast.TopDefn {
	all := make([]ast.TopDefn, 0, len(prelude.Defns())+len(defns))
	all = append(all, prelude.Defns()...)
	all = append(all, defns...)
	return all
}

func effectSetString(ks *checker.KindSet) string {
	names := ks.Names()
	return "{" + strings.Join(names, ", ") + "}"
}
