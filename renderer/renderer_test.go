package renderer

import (
	"strings"
	"testing"

	"github.com/daMelody/budgeters"
)

func TestAccountsMarkdown(t *testing.T) {
	b := budgeters.NewBook()
	a := b.AddAccount("Checking")
	a.Value = budgeters.MustAmount("75")

	md := AccountsMarkdown(b.Accounts(), "USD")

	if !strings.Contains(md, "| id | name | value |") {
		t.Error("missing table header")
	}
	if !strings.Contains(md, "| Checking | $75.00 |") {
		t.Errorf("missing account row in %q", md)
	}
	if !strings.Contains(md, a.ID().Short()) {
		t.Error("missing short id column")
	}
}

func TestTransactionsMarkdownTombstone(t *testing.T) {
	b := budgeters.NewBook()
	b.AddTransaction(budgeters.MustParse("2026-08-28"), budgeters.MustAmount("-12.34"),
		budgeters.Tombstone, "Groceries", "orphaned")

	md := TransactionsMarkdown("Transactions", b.Transactions(), "USD")

	// the tombstone sentinel is displayed distinctly from ordinary names
	if !strings.Contains(md, "**"+budgeters.Tombstone+"**") {
		t.Errorf("tombstone not highlighted in %q", md)
	}
	if !strings.Contains(md, "2026-08-28") {
		t.Error("missing date column")
	}
	if !strings.Contains(md, "-$12.34") {
		t.Errorf("missing formatted amount in %q", md)
	}
}

func TestCategoriesMarkdown(t *testing.T) {
	b := budgeters.NewBook()
	b.AddCategory("Groceries", budgeters.MustAmount("200"))

	md := CategoriesMarkdown(b.Categories(), "USD")

	if !strings.Contains(md, "| Groceries | $200.00 | $0.00 |") {
		t.Errorf("missing category row in %q", md)
	}
}
