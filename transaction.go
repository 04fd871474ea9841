package budgeters

import "strings"

// Reserved names. These are magic strings inherited from the persisted
// format; their treatment is deliberately not generalized.
const (
	// Transfer marks a transaction moving money between accounts. It counts
	// toward account totals but is excluded from all category aggregation.
	Transfer = "Transfer"
	// Rollover is the category of the carry-forward transactions seeded at
	// the start of a period.
	Rollover = "Rollover"
	// Tombstone replaces the account or category reference of a transaction
	// whose target was deleted.
	Tombstone = "<empty>"
)

// Transaction is a single ledger entry. Account and Category are denormalized
// copies of entity names, not foreign keys: integrity under rename and delete
// is enforced by the Book, not by the data model.
type Transaction struct {
	id          ID
	Date        Date
	Amount      Amount
	Account     string
	Category    string
	Description string
}

// NewTransaction creates a transaction with a fresh identifier.
func NewTransaction(date Date, amount Amount, account, category, description string) *Transaction {
	return &Transaction{
		id:          NewID(),
		Date:        date,
		Amount:      amount,
		Account:     account,
		Category:    category,
		Description: description,
	}
}

// ID returns the transaction's opaque identifier.
func (t *Transaction) ID() ID { return t.id }

// Matches reports whether the query is a substring of the transaction's
// date (ISO form), account, category, or description.
func (t *Transaction) Matches(query string) bool {
	return strings.Contains(t.Date.String(), query) ||
		strings.Contains(t.Account, query) ||
		strings.Contains(t.Category, query) ||
		strings.Contains(t.Description, query)
}
