package budgeters

// amt builds an amount from its literal form, for test readability.
func amt(s string) Amount { return MustAmount(s) }

// seedBook builds the little checking/groceries book most tests start from.
func seedBook() *Book {
	b := NewBook()
	b.AddAccount("Checking")
	b.AddAccount("Savings")
	b.AddCategory("Groceries", amt("200"))
	b.AddCategory("Rent", amt("800"))
	b.AddTransaction(MustParse("2026-08-03"), amt("100.00"), "Checking", "Groceries", "farmers market")
	b.AddTransaction(MustParse("2026-08-10"), amt("-25.005"), "Checking", "Groceries", "refund split")
	b.AddTransaction(MustParse("2026-08-15"), amt("-800"), "Checking", "Rent", "august rent")
	b.AddTransaction(MustParse("2026-08-20"), amt("50"), "Savings", Transfer, "monthly sweep")
	return b
}
