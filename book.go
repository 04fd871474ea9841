package budgeters

import (
	"fmt"
	"strings"
)

// Kind tags one of the three entity collections. The driver validates the
// user-typed tag with ParseKind and the rest of the system dispatches on the
// closed enum, never on strings.
type Kind int

const (
	KindAccount Kind = iota
	KindCategory
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindCategory:
		return "category"
	case KindTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// ParseKind parses a collection tag. It accepts the short forms the prompt
// historically used (acc, cat, tra) as well as the full names.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "acc", "account", "accounts":
		return KindAccount, nil
	case "cat", "category", "categories":
		return KindCategory, nil
	case "tra", "transaction", "transactions":
		return KindTransaction, nil
	default:
		return 0, fmt.Errorf("unknown kind %q: want acc, cat or tra", s)
	}
}

// Book is the entity store: it owns the three collections of the current
// period. A Book is constructed once by the driver and passed by pointer
// into each operation; it is not safe for concurrent use.
type Book struct {
	accounts     []*Account
	categories   []*Category
	transactions []*Transaction
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Accounts returns the account collection in insertion order.
func (b *Book) Accounts() []*Account { return b.accounts }

// Categories returns the category collection in insertion order.
func (b *Book) Categories() []*Category { return b.categories }

// Transactions returns the transaction collection in insertion order.
func (b *Book) Transactions() []*Transaction { return b.transactions }

// IsEmpty reports whether all three collections are empty.
func (b *Book) IsEmpty() bool {
	return len(b.accounts) == 0 && len(b.categories) == 0 && len(b.transactions) == 0
}

// AddAccount appends a new account and returns it.
func (b *Book) AddAccount(name string) *Account {
	a := NewAccount(name)
	b.accounts = append(b.accounts, a)
	return a
}

// AddCategory appends a new category and returns it.
func (b *Book) AddCategory(name string, expected Amount) *Category {
	c := NewCategory(name, expected)
	b.categories = append(b.categories, c)
	return c
}

// AddTransaction appends a new transaction and returns it.
func (b *Book) AddTransaction(date Date, amount Amount, account, category, description string) *Transaction {
	t := NewTransaction(date, amount, account, category, description)
	b.transactions = append(b.transactions, t)
	return t
}

// findByID scans the collection in insertion order and returns the first
// entity whose short id contains the query. There is no uniqueness check: an
// ambiguous query silently resolves to the first match (inherited policy).
// A miss returns ok=false, which callers treat as a no-op, not an error.
func findByID[T interface{ ID() ID }](items []T, query string) (T, bool) {
	for _, item := range items {
		if strings.Contains(item.ID().Short(), query) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindAccount resolves a user-typed id prefix to an account.
func (b *Book) FindAccount(query string) (*Account, bool) { return findByID(b.accounts, query) }

// FindCategory resolves a user-typed id prefix to a category.
func (b *Book) FindCategory(query string) (*Category, bool) { return findByID(b.categories, query) }

// FindTransaction resolves a user-typed id prefix to a transaction.
func (b *Book) FindTransaction(query string) (*Transaction, bool) {
	return findByID(b.transactions, query)
}

// EditAccount applies a field-level edit with a free-text payload. Renames
// cascade into the transactions referencing the account.
func (b *Book) EditAccount(a *Account, field, value string) error {
	switch field {
	case "name":
		b.RenameAccount(a, value)
	case "value":
		a.Value = ParseAmountLenient(value)
	default:
		return fmt.Errorf("unknown account field %q: want name or value", field)
	}
	return nil
}

// EditCategory applies a field-level edit with a free-text payload. Renames
// cascade into the transactions referencing the category.
func (b *Book) EditCategory(c *Category, field, value string) error {
	switch field {
	case "name":
		b.RenameCategory(c, value)
	case "expected":
		c.Expected = ParseAmountLenient(value)
	default:
		return fmt.Errorf("unknown category field %q: want name or expected", field)
	}
	return nil
}

// EditTransaction applies a field-level edit with a free-text payload.
// Account and category are free text: no validation is performed against
// existing names, keeping them consistent is the user's responsibility.
func (b *Book) EditTransaction(t *Transaction, field, value string) error {
	switch field {
	case "date":
		d, err := ParseDate(value)
		if err != nil {
			return err
		}
		t.Date = d
	case "amount":
		t.Amount = ParseAmountLenient(value)
	case "account":
		t.Account = value
	case "category":
		t.Category = value
	case "description":
		t.Description = value
	default:
		return fmt.Errorf("unknown transaction field %q", field)
	}
	return nil
}

// DeleteTransaction removes a transaction. There is no cascade.
func (b *Book) DeleteTransaction(t *Transaction) {
	for i, it := range b.transactions {
		if it == t {
			b.transactions = append(b.transactions[:i], b.transactions[i+1:]...)
			return
		}
	}
}

// Search returns the transactions matching the query, in insertion order.
func (b *Book) Search(query string) []*Transaction {
	var matched []*Transaction
	for _, t := range b.transactions {
		if t.Matches(query) {
			matched = append(matched, t)
		}
	}
	return matched
}
