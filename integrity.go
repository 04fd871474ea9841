package budgeters

// Transactions reference accounts and categories by name, so structural
// changes must be propagated by hand. The two operations below run
// synchronously inside the edit or delete that triggered them, before any
// recompute can observe the intermediate state: totals would otherwise be
// silently misattributed.

// RenameAccount changes the account's name and updates every transaction
// whose account field exactly equals the old name.
func (b *Book) RenameAccount(a *Account, name string) {
	old := a.Name
	a.Name = name
	for _, t := range b.transactions {
		if t.Account == old {
			t.Account = name
		}
	}
}

// RenameCategory changes the category's name and updates every transaction
// whose category field exactly equals the old name.
func (b *Book) RenameCategory(c *Category, name string) {
	old := c.Name
	c.Name = name
	for _, t := range b.transactions {
		if t.Category == old {
			t.Category = name
		}
	}
}

// DeleteAccount removes the account from its collection. Dependent
// transactions survive: their account field is overwritten with the
// Tombstone sentinel instead.
func (b *Book) DeleteAccount(a *Account) {
	for i, it := range b.accounts {
		if it == a {
			b.accounts = append(b.accounts[:i], b.accounts[i+1:]...)
			break
		}
	}
	for _, t := range b.transactions {
		if t.Account == a.Name {
			t.Account = Tombstone
		}
	}
}

// DeleteCategory removes the category from its collection, tombstoning the
// category field of its dependent transactions.
func (b *Book) DeleteCategory(c *Category) {
	for i, it := range b.categories {
		if it == c {
			b.categories = append(b.categories[:i], b.categories[i+1:]...)
			break
		}
	}
	for _, t := range b.transactions {
		if t.Category == c.Name {
			t.Category = Tombstone
		}
	}
}
