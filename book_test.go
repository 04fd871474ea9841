package budgeters

import (
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		err   bool
	}{
		{"acc", KindAccount, false},
		{"account", KindAccount, false},
		{"cat", KindCategory, false},
		{"Categories", KindCategory, false},
		{"tra", KindTransaction, false},
		{"transaction", KindTransaction, false},
		{"xyz", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseKind(tc.input)
			if tc.err {
				if err == nil {
					t.Fatalf("ParseKind(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestEditAccount(t *testing.T) {
	b := seedBook()
	a := b.Accounts()[0]

	if err := b.EditAccount(a, "value", "42.50"); err != nil {
		t.Fatalf("EditAccount(value) unexpected error: %v", err)
	}
	if !a.Value.Equal(amt("42.50")) {
		t.Errorf("value = %s, want 42.50", a.Value)
	}

	if err := b.EditAccount(a, "iban", "x"); err == nil {
		t.Error("EditAccount of an unknown field succeeded, want error")
	}
}

func TestEditTransactionFreeText(t *testing.T) {
	b := seedBook()
	tx := b.Transactions()[0]

	// account and category are unvalidated free text
	if err := b.EditTransaction(tx, "account", "NoSuchAccount"); err != nil {
		t.Fatalf("EditTransaction(account) unexpected error: %v", err)
	}
	if tx.Account != "NoSuchAccount" {
		t.Errorf("account = %q, want the raw payload", tx.Account)
	}

	if err := b.EditTransaction(tx, "date", "9/1/2026"); err != nil {
		t.Fatalf("EditTransaction(date) unexpected error: %v", err)
	}
	if tx.Date != MustParse("2026-09-01") {
		t.Errorf("date = %v, want 2026-09-01", tx.Date)
	}

	// a malformed date leaves the transaction unchanged
	if err := b.EditTransaction(tx, "date", "not a date"); err == nil {
		t.Error("EditTransaction of a malformed date succeeded, want error")
	}
	if tx.Date != MustParse("2026-09-01") {
		t.Errorf("date changed to %v on a failed edit", tx.Date)
	}
}

func TestDeleteTransaction(t *testing.T) {
	b := seedBook()
	n := len(b.Transactions())
	tx := b.Transactions()[1]

	b.DeleteTransaction(tx)

	if len(b.Transactions()) != n-1 {
		t.Fatalf("got %d transactions, want %d", len(b.Transactions()), n-1)
	}
	for _, it := range b.Transactions() {
		if it == tx {
			t.Error("deleted transaction still present")
		}
	}
}

func TestSearch(t *testing.T) {
	b := seedBook()

	got := b.Search("rent")
	want := []*Transaction{b.Transactions()[2]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(\"rent\") = %v, want the august rent transaction", got)
	}

	// date substrings match too
	if got := b.Search("2026-08"); len(got) != 4 {
		t.Errorf("Search(\"2026-08\") matched %d transactions, want 4", len(got))
	}

	if got := b.Search("nothing here"); got != nil {
		t.Errorf("Search of an absent term = %v, want none", got)
	}
}
