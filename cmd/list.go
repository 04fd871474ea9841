package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/daMelody/budgeters"
	"github.com/daMelody/budgeters/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the accounts, categories, and transactions" }
func (*listCmd) Usage() string {
	return `bgt list [<acc|cat|tra>]

  Displays the selected collection of the period, or all three when no kind
  is given.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, p, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	currency := Currency()
	title := fmt.Sprintf("Transactions of %s", p)

	if f.NArg() == 0 {
		sections := []string{
			renderer.AccountsMarkdown(b.Accounts(), currency),
			renderer.CategoriesMarkdown(b.Categories(), currency),
			renderer.TransactionsMarkdown(title, b.Transactions(), currency),
		}
		printMarkdown(strings.Join(sections, "\n"))
		return subcommands.ExitSuccess
	}

	kind, err := budgeters.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	switch kind {
	case budgeters.KindAccount:
		printMarkdown(renderer.AccountsMarkdown(b.Accounts(), currency))
	case budgeters.KindCategory:
		printMarkdown(renderer.CategoriesMarkdown(b.Categories(), currency))
	case budgeters.KindTransaction:
		printMarkdown(renderer.TransactionsMarkdown(title, b.Transactions(), currency))
	}
	return subcommands.ExitSuccess
}
