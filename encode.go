package budgeters

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
)

// This file implements the .cls codec: each collection persists to a flat
// text blob, one entity per line, fields comma-separated in a fixed order,
// no header and no escaping. A field containing a comma corrupts its line on
// the way back in; that is a known limitation of the format, kept for
// compatibility with existing files.
//
// Identifiers are never persisted. Every decoded entity is assigned a brand
// new one.

// scanLines yields the lines of a .cls blob up to the first blank line,
// which marks end-of-data.
func scanLines(r io.Reader, visit func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		if err := visit(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// cell returns the i-th comma-separated field, or "" when the line is short.
// Extra fields (a comma inside the last column) are silently dropped.
func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// amountCell parses a numeric field, substituting zero on malformed input.
// The substitution is a recovery, not an abort: the rest of the line loads.
func amountCell(cells []string, i int) Amount {
	s := cell(cells, i)
	if s == "" {
		return Amount{}
	}
	a, err := ParseAmount(s)
	if err != nil {
		log.Printf("cannot read amount %q, substituting 0.0: %v", s, err)
		return Amount{}
	}
	return a
}

// EncodeAccounts writes the account collection as "name,value" lines.
func EncodeAccounts(w io.Writer, accounts []*Account) error {
	for _, a := range accounts {
		if _, err := fmt.Fprintf(w, "%s,%s\n", a.Name, a.Value); err != nil {
			return fmt.Errorf("could not write account %q: %w", a.Name, err)
		}
	}
	return nil
}

// DecodeAccounts reads "name,value" lines into a fresh account collection.
func DecodeAccounts(r io.Reader) ([]*Account, error) {
	var accounts []*Account
	err := scanLines(r, func(line string) error {
		cells := strings.Split(line, ",")
		a := NewAccount(cell(cells, 0))
		a.Value = amountCell(cells, 1)
		accounts = append(accounts, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode accounts: %w", err)
	}
	return accounts, nil
}

// EncodeCategories writes the category collection as "name,expected,actual" lines.
func EncodeCategories(w io.Writer, categories []*Category) error {
	for _, c := range categories {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", c.Name, c.Expected, c.Actual); err != nil {
			return fmt.Errorf("could not write category %q: %w", c.Name, err)
		}
	}
	return nil
}

// DecodeCategories reads "name,expected,actual" lines into a fresh category collection.
func DecodeCategories(r io.Reader) ([]*Category, error) {
	var categories []*Category
	err := scanLines(r, func(line string) error {
		cells := strings.Split(line, ",")
		c := NewCategory(cell(cells, 0), amountCell(cells, 1))
		c.Actual = amountCell(cells, 2)
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode categories: %w", err)
	}
	return categories, nil
}

// EncodeTransactions writes the transaction collection as
// "date,amount,account,category,description" lines, the date in RFC3339
// millisecond form.
func EncodeTransactions(w io.Writer, transactions []*Transaction) error {
	for _, t := range transactions {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
			t.Date.Timestamp(), t.Amount, t.Account, t.Category, t.Description)
		if err != nil {
			return fmt.Errorf("could not write transaction on %s: %w", t.Date, err)
		}
	}
	return nil
}

// DecodeTransactions reads "date,amount,account,category,description" lines
// into a fresh transaction collection. A malformed date is the one fatal
// condition: a transaction cannot exist without one, so the whole load fails.
func DecodeTransactions(r io.Reader) ([]*Transaction, error) {
	var transactions []*Transaction
	err := scanLines(r, func(line string) error {
		cells := strings.Split(line, ",")
		date, err := ParseTimestamp(cell(cells, 0))
		if err != nil {
			return err
		}
		transactions = append(transactions, NewTransaction(
			date,
			amountCell(cells, 1),
			cell(cells, 2),
			cell(cells, 3),
			cell(cells, 4),
		))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode transactions: %w", err)
	}
	return transactions, nil
}
