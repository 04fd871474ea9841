package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/daMelody/budgeters"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an account, category, or transaction" }
func (*deleteCmd) Usage() string {
	return `bgt delete <acc|cat|tra> [-id <prefix>]

  Removes the entry whose short id contains the prefix. Transactions that
  referenced a deleted account or category keep a <empty> marker in that
  field, so the history stays readable.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id prefix of the entry to delete (prompted when empty)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	id := c.id
	if id == "" {
		id = newPrompter().ask("id", "")
	}

	switch kind {
	case budgeters.KindAccount:
		a, ok := b.FindAccount(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no account matches id %q\n", id)
			return subcommands.ExitFailure
		}
		b.DeleteAccount(a)
	case budgeters.KindCategory:
		ca, ok := b.FindCategory(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no category matches id %q\n", id)
			return subcommands.ExitFailure
		}
		b.DeleteCategory(ca)
	case budgeters.KindTransaction:
		t, ok := b.FindTransaction(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no transaction matches id %q\n", id)
			return subcommands.ExitFailure
		}
		b.DeleteTransaction(t)
	}

	b.Recompute()
	if err := SaveBook(b, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s from %s\n", kind, p)
	return subcommands.ExitSuccess
}
