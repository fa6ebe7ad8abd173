package main

import "github.com/lithammer/dedent"

var runHelp = dedent.Dedent(`
	run evaluates a single source file end to end: lex, parse, desugar,
	merge with the prelude, check, and run main().

	On success the resulting value is printed to stdout. On failure the
	diagnostic is printed to stderr and the process exits non-zero.
`)

var replHelp = dedent.Dedent(`
	repl starts an interactive read-eval-print loop. Each input line is
	parsed as a single top-level definition and merged into the running
	program; a definition cannot span several lines. main, if present, is
	re-evaluated after every successful definition.

	Meta-commands (shell-quoted like a shell command line):
	  :load <file>   merge every definition in <file> into the session
	  :type <expr>   print the type and effect set of an expression
	  :dump-cst      print the CST of the last parsed definition
	  :quit          exit the repl
`)
