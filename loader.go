package budgeters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Persisted layout: one directory per period (<root>/<year>/<month>)
// containing exactly three files.
const (
	AccountFile     = "Account.cls"
	CategoryFile    = "Category.cls"
	TransactionFile = "Transaction.cls"
)

// Store reads and writes book snapshots under a root directory, one
// subdirectory per period.
type Store struct {
	Root string
}

// Dir returns the directory holding the given period's files.
func (s Store) Dir(p Period) string {
	return filepath.Join(s.Root, p.Dir())
}

// Load reads the period's three files into a new book. A missing directory
// or file is not an error: the corresponding collection is simply empty, as
// for a period that has not been written yet.
func (s Store) Load(p Period) (*Book, error) {
	book := NewBook()
	dir := s.Dir(p)

	if err := loadFile(filepath.Join(dir, AccountFile), func(r io.Reader) error {
		accounts, err := DecodeAccounts(r)
		book.accounts = accounts
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, CategoryFile), func(r io.Reader) error {
		categories, err := DecodeCategories(r)
		book.categories = categories
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, TransactionFile), func(r io.Reader) error {
		transactions, err := DecodeTransactions(r)
		book.transactions = transactions
		return err
	}); err != nil {
		return nil, err
	}
	return book, nil
}

// Save writes the period's three files. The writes are independent and not
// atomic as a group: a failure after the first file has been written leaves
// the on-disk snapshot internally inconsistent. The in-memory book is never
// modified.
func (s Store) Save(b *Book, p Period) error {
	dir := s.Dir(p)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create period directory %q: %w", dir, err)
	}

	if err := saveFile(filepath.Join(dir, AccountFile), func(w io.Writer) error {
		return EncodeAccounts(w, b.accounts)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dir, CategoryFile), func(w io.Writer) error {
		return EncodeCategories(w, b.categories)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(dir, TransactionFile), func(w io.Writer) error {
		return EncodeTransactions(w, b.transactions)
	})
}

// loadFile opens a file and hands it to decode; a missing file is a no-op.
func loadFile(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return fmt.Errorf("could not load %q: %w", path, err)
	}
	return nil
}

// saveFile creates (or truncates) a file and hands it to encode.
func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		return fmt.Errorf("could not save %q: %w", path, err)
	}
	return nil
}

// Static check: a Store can close a period for the rollover.
var _ Saver = Store{}
