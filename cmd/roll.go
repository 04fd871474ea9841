package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/daMelody/budgeters"
	"github.com/google/subcommands"
)

type rollCmd struct{}

func (*rollCmd) Name() string     { return "roll" }
func (*rollCmd) Synopsis() string { return "close the period and seed the next one" }
func (*rollCmd) Usage() string {
	return `bgt roll

  Recomputes and saves the period, then clears the transactions and seeds the
  next month with one Rollover transaction per account carrying its value.
  See 'bgt topic rollover' for details.
`
}

func (*rollCmd) SetFlags(f *flag.FlagSet) {}

func (c *rollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, p, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := budgeters.Store{Root: Root()}
	next, err := b.Rollover(p, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", p, err)
		return subcommands.ExitFailure
	}

	if err := store.Save(b, next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s is closed but %s is not saved: %v\n", p, next, err)
		fmt.Fprintf(os.Stderr, "Fix the underlying problem and run 'bgt -y %d -m %d update' to save it.\n", next.Year, int(next.Month))
		return subcommands.ExitFailure
	}

	fmt.Printf("Closed %s, opened %s with %d rollover transactions\n", p, next, len(b.Transactions()))
	return subcommands.ExitSuccess
}
