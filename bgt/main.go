package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/daMelody/budgeters/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests. Run COMP_INSTALL=1 bgt to
// install it into the shell's rc file.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("bgt")
}
