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

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "display the transactions matching a query" }
func (*searchCmd) Usage() string {
	return `bgt search <query>

  Displays the transactions whose date, account, category, or description
  contains the query.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	b, _, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	matches := b.Search(query)
	title := fmt.Sprintf("Transactions matching %q", query)
	printMarkdown(renderer.TransactionsMarkdown(title, matches, Currency()))
	return subcommands.ExitSuccess
}
