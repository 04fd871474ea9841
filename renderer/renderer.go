// Package renderer formats the budget collections as markdown, ready to be
// printed raw or rendered to the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/daMelody/budgeters"
)

// AccountsMarkdown renders the account collection as a markdown table.
// Amounts are formatted for the given display currency.
func AccountsMarkdown(accounts []*budgeters.Account, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Accounts\n\n")
	fmt.Fprintf(&b, "| id | name | value |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.ID().Short(), a.Name, a.Value.Display(currency))
	}
	fmt.Fprintf(&b, "\n")
	return b.String()
}

// CategoriesMarkdown renders the category collection as a markdown table.
func CategoriesMarkdown(categories []*budgeters.Category, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Categories\n\n")
	fmt.Fprintf(&b, "| id | name | expected | actual |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|---:|\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			c.ID().Short(), c.Name, c.Expected.Display(currency), c.Actual.Display(currency))
	}
	fmt.Fprintf(&b, "\n")
	return b.String()
}

// TransactionsMarkdown renders a transaction list as a markdown table. The
// title lets the search command reuse the same table for its results.
func TransactionsMarkdown(title string, transactions []*budgeters.Transaction, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	fmt.Fprintf(&b, "| id | date | amount | account | category | description |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|:---|:---|:---|\n")
	for _, t := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			t.ID().Short(), t.Date, t.Amount.Display(currency),
			reference(t.Account), reference(t.Category), t.Description)
	}
	fmt.Fprintf(&b, "\n")
	return b.String()
}

// reference formats a denormalized name reference, calling out the
// tombstone left behind by a deleted account or category.
func reference(name string) string {
	if name == budgeters.Tombstone {
		return fmt.Sprintf("**%s**", name)
	}
	return name
}
