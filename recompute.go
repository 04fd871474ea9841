package budgeters

// Recompute folds the full transaction collection into per-account and
// per-category totals and overwrites each Account.Value and Category.Actual.
//
// Totals are grouped by name. Transactions whose category is Transfer are
// excluded from the category accumulator only; they still count toward their
// account. A name no transaction references is reset to zero, not left
// unchanged. Stored totals are rounded to 2 decimal places, half away from
// zero.
//
// Recompute always folds from the raw transaction list, never from
// previously rounded totals, so it is idempotent: calling it repeatedly
// without a structural change in between cannot drift.
func (b *Book) Recompute() {
	accounts := make(map[string]Amount, len(b.accounts))
	categories := make(map[string]Amount, len(b.categories))

	for _, t := range b.transactions {
		accounts[t.Account] = accounts[t.Account].Add(t.Amount)
		if t.Category == Transfer {
			continue
		}
		categories[t.Category] = categories[t.Category].Add(t.Amount)
	}

	for _, a := range b.accounts {
		a.Value = accounts[a.Name].Round2()
	}
	for _, c := range b.categories {
		c.Actual = categories[c.Name].Round2()
	}
}
