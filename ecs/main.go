package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/elections/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion; a no-op outside of completion mode.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"import":    {Flags: map[string]complete.Predictor{"d": nil}},
			"list":      {},
			"summary":   {Flags: map[string]complete.Predictor{"d": nil}},
			"standings": {Flags: map[string]complete.Predictor{"d": nil}},
			"winners":   {Flags: map[string]complete.Predictor{"d": nil}},
			"seats":     {Flags: map[string]complete.Predictor{"d": nil}},
			"popular":   {Flags: map[string]complete.Predictor{"d": nil}},
			"topic":     {},
		},
		Flags: map[string]complete.Predictor{
			"history-file": nil,
			"jurisdiction": nil,
		},
	}
	completion.Complete("ecs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
