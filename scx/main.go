package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/scalable/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion, before flag parsing.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"session-file": predict.Files("*"),
			"api":          nil,
			"o":            predict.Dirs("*"),
			"v":            nil,
		},
		Sub: map[string]*complete.Command{
			"login": {Flags: map[string]complete.Predictor{
				"H":            nil,
				"page":         nil,
				"state":        predict.Files("*.json"),
				"person-id":    nil,
				"portfolio-id": nil,
			}},
			"identify":  {},
			"export-de": {},
			"export-en": {},
			"topic":     {Args: predict.Set{"readme", "login", "export", "locales"}},
		},
	}
	completion.Complete("scx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
