package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hnpage/ghino"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), "VND")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTx(t *testing.T, s *Store, name, phone string, amount int64, typ ghino.TxType) ghino.Transaction {
	t.Helper()
	tx := ghino.NewTransaction(name, phone, decimal.NewFromInt(amount), typ, "", false)
	if err := s.InsertTransaction(tx); err != nil {
		t.Fatalf("InsertTransaction() = %v", err)
	}
	return tx
}

func TestInsertAndSnapshot(t *testing.T) {
	s := testStore(t)
	tx := newTx(t, s, "Anna", "0900000001", 100000, ghino.Debit)
	newTx(t, s, "Ben", "0900000002", 30000, ghino.Credit)

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}
	if len(snap.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(snap.Transactions))
	}
	if snap.Currency != "VND" {
		t.Errorf("snapshot currency = %q", snap.Currency)
	}

	got, err := s.Transaction(tx.ID)
	if err != nil {
		t.Fatalf("Transaction() = %v", err)
	}
	if !got.Amount.Equal(tx.Amount) || got.ContactName != "Anna" {
		t.Errorf("reloaded transaction differs: %+v", got)
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	s := testStore(t)
	bad := ghino.NewTransaction("", "0900000001", decimal.NewFromInt(100), ghino.Debit, "", false)
	if err := s.InsertTransaction(bad); err == nil {
		t.Fatal("InsertTransaction accepted a transaction without a name")
	}
	snap, _ := s.Snapshot()
	if len(snap.Transactions) != 0 {
		t.Error("rejected transaction reached the database")
	}
}

func TestUpdateTransaction(t *testing.T) {
	s := testStore(t)
	tx := newTx(t, s, "Anna", "0900000001", 100000, ghino.Debit)

	tx.ContactName = "Anna Pham"
	tx.Amount = decimal.NewFromInt(120000)
	if err := s.UpdateTransaction(tx); err != nil {
		t.Fatalf("UpdateTransaction() = %v", err)
	}

	got, err := s.Transaction(tx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ContactName != "Anna Pham" || !got.Amount.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("update not persisted: %+v", got)
	}

	tx.ID = "missing"
	if err := s.UpdateTransaction(tx); err == nil {
		t.Error("UpdateTransaction accepted an unknown id")
	}
}

func TestPaymentLifecycle(t *testing.T) {
	s := testStore(t)
	tx := newTx(t, s, "Anna", "0900000001", 100000, ghino.Debit)

	p := ghino.NewPayment(tx.ID, decimal.NewFromInt(40000), "first half")
	if err := s.InsertPayment(p); err != nil {
		t.Fatalf("InsertPayment() = %v", err)
	}

	// a payment against a missing transaction is rejected
	orphan := ghino.NewPayment("missing", decimal.NewFromInt(1), "")
	if err := s.InsertPayment(orphan); err == nil {
		t.Error("InsertPayment accepted an orphan payment")
	}

	snap, _ := s.Snapshot()
	if got := snap.PaidAmount(tx.ID); !got.Equal(ghino.M(40000, "VND")) {
		t.Errorf("PaidAmount = %s, want 40000", got)
	}
	if got := snap.Remaining(tx); !got.Equal(ghino.M(60000, "VND")) {
		t.Errorf("Remaining = %s, want 60000", got)
	}

	p.Amount = decimal.NewFromInt(50000)
	if err := s.UpdatePayment(p); err != nil {
		t.Fatalf("UpdatePayment() = %v", err)
	}
	snap, _ = s.Snapshot()
	if got := snap.PaidAmount(tx.ID); !got.Equal(ghino.M(50000, "VND")) {
		t.Errorf("PaidAmount after update = %s, want 50000", got)
	}

	if err := s.DeletePayment(p.ID); err != nil {
		t.Fatalf("DeletePayment() = %v", err)
	}
	snap, _ = s.Snapshot()
	if got := snap.PaidAmount(tx.ID); !got.IsZero() {
		t.Errorf("PaidAmount after delete = %s, want 0", got)
	}
}

func TestDeleteTransactionCascades(t *testing.T) {
	s := testStore(t)
	tx := newTx(t, s, "Anna", "0900000001", 100000, ghino.Debit)
	keep := newTx(t, s, "Ben", "0900000002", 5000, ghino.Debit)

	for i := 0; i < 3; i++ {
		if err := s.InsertPayment(ghino.NewPayment(tx.ID, decimal.NewFromInt(1000), "")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.InsertPayment(ghino.NewPayment(keep.ID, decimal.NewFromInt(500), "")); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteTransaction(tx.ID); err != nil {
		t.Fatalf("DeleteTransaction() = %v", err)
	}

	snap, _ := s.Snapshot()
	if _, ok := snap.Transaction(tx.ID); ok {
		t.Error("deleted transaction still present")
	}
	if got := snap.PaidAmount(tx.ID); !got.IsZero() {
		t.Errorf("payments survived the cascade: %s", got)
	}
	// unrelated records are untouched
	if got := snap.PaidAmount(keep.ID); !got.Equal(ghino.M(500, "VND")) {
		t.Errorf("unrelated payment lost: %s", got)
	}
}

func TestTransactionsByPhone(t *testing.T) {
	s := testStore(t)
	newTx(t, s, "Anna", "0900000001", 1000, ghino.Debit)
	newTx(t, s, "Anna", "0900000001", 2000, ghino.Credit)
	newTx(t, s, "Ben", "0900000002", 3000, ghino.Debit)

	txs, err := s.TransactionsByPhone("0900000001")
	if err != nil {
		t.Fatalf("TransactionsByPhone() = %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("got %d transactions, want 2", len(txs))
	}
}

func TestSubscribeReceivesLatestSnapshot(t *testing.T) {
	s := testStore(t)
	ch := s.Subscribe()

	tx := newTx(t, s, "Anna", "0900000001", 100000, ghino.Debit)
	// a second mutation before the subscriber reads: only the latest state
	// must be observed.
	if err := s.InsertPayment(ghino.NewPayment(tx.ID, decimal.NewFromInt(40000), "")); err != nil {
		t.Fatal(err)
	}

	snap := <-ch
	if len(snap.Transactions) != 1 || len(snap.Payments) != 1 {
		t.Errorf("got %d transactions and %d payments, want the latest state", len(snap.Transactions), len(snap.Payments))
	}
	if got := snap.Remaining(tx); !got.Equal(ghino.M(60000, "VND")) {
		t.Errorf("Remaining = %s, want 60000", got)
	}

	select {
	case <-ch:
		t.Error("channel must hold the latest snapshot only")
	default:
	}
}
