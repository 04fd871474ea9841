package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/daMelody/budgeters"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an account, category, or transaction to the period" }
func (*addCmd) Usage() string {
	return `bgt add <acc|cat|tra>

  Prompts for the fields of the new entry, recomputes the totals, and saves
  the period.

Usage Examples:
# Record a purchase.
$ bgt add tra

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	kind, err := budgeters.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	b, p, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pr := newPrompter()
	switch kind {
	case budgeters.KindAccount:
		name := pr.ask("name", "")
		if name == "" {
			fmt.Fprintln(os.Stderr, "an account needs a name")
			return subcommands.ExitFailure
		}
		b.AddAccount(name)
	case budgeters.KindCategory:
		name := pr.ask("name", "")
		if name == "" {
			fmt.Fprintln(os.Stderr, "a category needs a name")
			return subcommands.ExitFailure
		}
		b.AddCategory(name, pr.askAmount("expected"))
	case budgeters.KindTransaction:
		date := pr.askDate("date")
		amount := pr.askAmount("amount")
		account := pr.ask("account", "")
		category := pr.ask("category", "")
		description := pr.ask("description", "")
		b.AddTransaction(date, amount, account, category, description)
	}

	b.Recompute()
	if err := SaveBook(b, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s to %s\n", kind, p)
	return subcommands.ExitSuccess
}
