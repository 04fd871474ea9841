package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/daMelody/budgeters"
	"github.com/google/subcommands"
)

type editCmd struct {
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change one field of an account, category, or transaction" }
func (*editCmd) Usage() string {
	return `bgt edit <acc|cat|tra> [-id <prefix>] [<field> <value>]

  Finds the entry whose short id contains the prefix, sets one field, and
  saves the period. Renaming an account or a category updates the matching
  transactions as well. Field and value are prompted when not given.

Usage Examples:
# Fix a typo in a transaction description.
$ bgt edit tra -id 4f21aa description "farmers market"

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id prefix of the entry to edit (prompted when empty)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	id := c.id
	if id == "" {
		id = pr.ask("id", "")
	}
	field, value := c.fieldValue(f, pr)

	switch kind {
	case budgeters.KindAccount:
		a, ok := b.FindAccount(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no account matches id %q\n", id)
			return subcommands.ExitFailure
		}
		err = b.EditAccount(a, field, value)
	case budgeters.KindCategory:
		ca, ok := b.FindCategory(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no category matches id %q\n", id)
			return subcommands.ExitFailure
		}
		err = b.EditCategory(ca, field, value)
	case budgeters.KindTransaction:
		t, ok := b.FindTransaction(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no transaction matches id %q\n", id)
			return subcommands.ExitFailure
		}
		err = b.EditTransaction(t, field, value)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	b.Recompute()
	if err := SaveBook(b, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited %s of %s\n", field, kind)
	return subcommands.ExitSuccess
}

// fieldValue takes the field and value from the remaining arguments, or
// prompts for them.
func (c *editCmd) fieldValue(f *flag.FlagSet, pr *prompter) (field, value string) {
	if f.NArg() >= 3 {
		return f.Arg(1), strings.Join(f.Args()[2:], " ")
	}
	field = pr.ask("field", "")
	value = pr.ask("value", "")
	return field, value
}
