package budgeters

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreSaveLoad(t *testing.T) {
	store := Store{Root: t.TempDir()}
	period := Period{2026, time.August}

	b := seedBook()
	b.Recompute()
	if err := store.Save(b, period); err != nil {
		t.Fatalf("Save unexpected error: %v", err)
	}

	// the period directory holds exactly the three files
	for _, name := range []string{AccountFile, CategoryFile, TransactionFile} {
		if _, err := os.Stat(filepath.Join(store.Dir(period), name)); err != nil {
			t.Errorf("missing %s after save: %v", name, err)
		}
	}

	loaded, err := store.Load(period)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if len(loaded.Accounts()) != 2 || len(loaded.Categories()) != 2 || len(loaded.Transactions()) != 4 {
		t.Fatalf("loaded %d/%d/%d entities, want 2/2/4",
			len(loaded.Accounts()), len(loaded.Categories()), len(loaded.Transactions()))
	}
	for i, a := range loaded.Accounts() {
		if a.Name != b.Accounts()[i].Name || !a.Value.Equal(b.Accounts()[i].Value) {
			t.Errorf("account %d = %q %s, want %q %s", i, a.Name, a.Value, b.Accounts()[i].Name, b.Accounts()[i].Value)
		}
	}
	for i, tx := range loaded.Transactions() {
		want := b.Transactions()[i]
		if tx.Date != want.Date || !tx.Amount.Equal(want.Amount) || tx.Account != want.Account {
			t.Errorf("transaction %d = %+v, want %+v", i, tx, want)
		}
	}
}

func TestStoreLoadMissingPeriod(t *testing.T) {
	store := Store{Root: t.TempDir()}

	b, err := store.Load(Period{2026, time.January})
	if err != nil {
		t.Fatalf("Load of an unwritten period errored: %v", err)
	}
	if !b.IsEmpty() {
		t.Error("Load of an unwritten period gave a non-empty book")
	}
}

func TestStorePartialSave(t *testing.T) {
	store := Store{Root: t.TempDir()}
	period := Period{2026, time.August}

	// Force the third write to fail: a directory squatting the file name.
	dir := store.Dir(period)
	if err := os.MkdirAll(filepath.Join(dir, TransactionFile), 0755); err != nil {
		t.Fatal(err)
	}

	b := seedBook()
	if err := store.Save(b, period); err == nil {
		t.Fatal("Save succeeded with an unwritable transaction file, want error")
	}

	// The first two files were already written: the snapshot is internally
	// inconsistent on disk. This is the accepted limitation, pinned here.
	for _, name := range []string{AccountFile, CategoryFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing after partial save: %v", name, err)
		}
	}

	// The in-memory book is untouched.
	if len(b.Transactions()) != 4 {
		t.Errorf("in-memory book changed by a failed save")
	}
}

func TestRolloverThroughStore(t *testing.T) {
	store := Store{Root: t.TempDir()}
	august := Period{2026, time.August}

	b := seedBook()
	next, err := b.Rollover(august, store)
	if err != nil {
		t.Fatalf("Rollover unexpected error: %v", err)
	}

	// the closing period's snapshot is on disk with the pre-clear transactions
	closed, err := store.Load(august)
	if err != nil {
		t.Fatalf("Load of the closed period errored: %v", err)
	}
	if len(closed.Transactions()) != 4 {
		t.Errorf("closed period holds %d transactions, want 4", len(closed.Transactions()))
	}

	// the in-memory book carries one seed per account into the next period
	if len(b.Transactions()) != 2 {
		t.Errorf("got %d transactions after rollover, want one per account", len(b.Transactions()))
	}
	if next != (Period{2026, time.September}) {
		t.Errorf("next period = %v, want 2026/09", next)
	}
}

func TestRolloverNextPeriodSaveFailure(t *testing.T) {
	store := Store{Root: t.TempDir()}
	august := Period{2026, time.August}

	b := seedBook()
	next, err := b.Rollover(august, store)
	if err != nil {
		t.Fatalf("Rollover unexpected error: %v", err)
	}

	// The rollover already cleared and reseeded the book. Force the new
	// period's save to fail: a directory squatting the file name.
	dir := store.Dir(next)
	if err := os.MkdirAll(filepath.Join(dir, TransactionFile), 0755); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(b, next); err == nil {
		t.Fatal("Save of the seeded period succeeded with an unwritable transaction file, want error")
	}

	// Memory and disk now disagree: the book holds the seeds, but the new
	// period's transaction file was never written. This is the known
	// mid-rollover inconsistency, pinned here.
	if len(b.Transactions()) != 2 {
		t.Errorf("in-memory book holds %d transactions, want the 2 seeds", len(b.Transactions()))
	}
	for _, tx := range b.Transactions() {
		if tx.Category != Rollover {
			t.Errorf("in-memory transaction category = %q, want %q", tx.Category, Rollover)
		}
	}
	if fi, err := os.Stat(filepath.Join(dir, TransactionFile)); err == nil && !fi.IsDir() {
		t.Error("next period's transaction file exists on disk, want it unwritten")
	}

	// The closed period is intact: re-running the save is the recovery path.
	closed, err := store.Load(august)
	if err != nil {
		t.Fatalf("Load of the closed period errored: %v", err)
	}
	if len(closed.Transactions()) != 4 {
		t.Errorf("closed period holds %d transactions, want 4", len(closed.Transactions()))
	}
}
