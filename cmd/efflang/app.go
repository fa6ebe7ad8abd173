package main

import (
	"github.com/lithammer/dedent"
	cli "github.com/urfave/cli/v2"
)

var appHelp = dedent.Dedent(`
	efflang lexes, parses, checks, and evaluates programs in the small
	statically-typed, effect-tracked language described by this repository.
`)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "efflang"
	app.Usage = "a statically-typed, effect-tracked language"
	app.Description = appHelp
	app.Commands = []*cli.Command{
		runCommand,
		replCommand,
	}
	return app
}
