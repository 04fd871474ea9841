package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/daMelody/budgeters/renderer"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "recompute the totals from the transactions and save" }
func (*updateCmd) Usage() string {
	return `bgt update

  Recomputes every account value and category actual from the raw transaction
  list, saves the period, and displays the result. Running it twice in a row
  changes nothing.
`
}

func (*updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, p, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	b.Recompute()
	if err := SaveBook(b, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency := Currency()
	sections := []string{
		renderer.AccountsMarkdown(b.Accounts(), currency),
		renderer.CategoriesMarkdown(b.Categories(), currency),
	}
	printMarkdown(strings.Join(sections, "\n"))
	return subcommands.ExitSuccess
}
