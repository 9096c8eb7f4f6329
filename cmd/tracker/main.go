// Command tracker runs the real estate calculators from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&amortizeCmd{}, "calculators")
	commander.Register(&roiCmd{}, "calculators")
	commander.Register(&mirrCmd{}, "calculators")
	commander.Register(&projectCmd{}, "calculators")

	commander.Register(&portfolioCmd{}, "portfolio")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
