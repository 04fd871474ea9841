package budgeters

import "fmt"

// Saver persists a book snapshot to a period's storage location. The file
// layout is a collaborator concern; the rollover only needs the operation.
type Saver interface {
	Save(b *Book, p Period) error
}

// Rollover closes the given period and opens the next one:
//
//  1. recompute, so account values reflect the period's final transactions,
//  2. persist the snapshot to the closing period's storage location,
//  3. clear the transaction collection entirely,
//  4. seed one transaction per account, dated the first day of the next
//     period, carrying the account's just-recomputed value under the
//     Rollover category.
//
// Accounts and categories are not reset. The next recompute reproduces each
// account's carried-forward value from its single seeded transaction.
//
// If persisting fails the book is left untouched and the error is returned.
// There is no guard against rolling the same period twice: a second call
// recomputes from the seeded transactions and reseeds the same values dated
// one more period ahead.
func (b *Book) Rollover(current Period, saver Saver) (Period, error) {
	b.Recompute()

	if err := saver.Save(b, current); err != nil {
		return current, fmt.Errorf("could not close period %s: %w", current, err)
	}

	next := current.Next()
	opening := next.FirstDay()

	b.transactions = b.transactions[:0]
	for _, a := range b.accounts {
		b.AddTransaction(opening, a.Value, a.Name, Rollover, fmt.Sprintf("carried into %s", next))
	}
	return next, nil
}
