package budgeters

// Account is a real-world account (checking, savings, cash...). Its Name is
// the identity other entities reference; Value is derived from transactions
// by Recompute and should not be trusted between a structural change and the
// next recompute.
type Account struct {
	id    ID
	Name  string
	Value Amount
}

// NewAccount creates an account with a fresh identifier and a zero value.
func NewAccount(name string) *Account {
	return &Account{id: NewID(), Name: name}
}

// ID returns the account's opaque identifier.
func (a *Account) ID() ID { return a.id }
