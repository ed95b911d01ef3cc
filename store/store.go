// Package store persists transactions and payments in an embedded sqlite
// database and notifies subscribers with a fresh snapshot after every
// mutation, so reports can be recomputed reactively.
package store

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hnpage/ghino"
)

// Store is the sole owner of the mutable record set. Mutations are
// serialized by the database; readers only ever see full, self-consistent
// snapshots.
type Store struct {
	db       *gorm.DB
	currency string

	mu   sync.Mutex
	subs []chan ghino.Snapshot
}

// Open opens (or creates) the database at path and migrates the schema.
// Use "file::memory:?cache=shared" for an in-memory database.
func Open(path, currency string) (*Store, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	} else if !strings.Contains(dsn, "_foreign_keys") {
		dsn += "&_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&ghino.Transaction{}, &ghino.Payment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db, currency: currency}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Currency returns the display currency snapshots are denominated in.
func (s *Store) Currency() string { return s.currency }

// Subscribe registers a subscriber that receives a fresh snapshot after every
// successful mutation. The channel holds the latest snapshot only: a slow
// subscriber observes the most recent state, not every intermediate one.
func (s *Store) Subscribe() <-chan ghino.Snapshot {
	ch := make(chan ghino.Snapshot, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify() {
	snap, err := s.Snapshot()
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch: // drop the stale snapshot
		default:
		}
		ch <- snap
	}
}

// Snapshot reads a full, point-in-time view of all records in
// chronological order.
func (s *Store) Snapshot() (ghino.Snapshot, error) {
	var txs []ghino.Transaction
	if err := s.db.Order("date, id").Find(&txs).Error; err != nil {
		return ghino.Snapshot{}, fmt.Errorf("failed to read transactions: %w", err)
	}
	var ps []ghino.Payment
	if err := s.db.Order("date, id").Find(&ps).Error; err != nil {
		return ghino.Snapshot{}, fmt.Errorf("failed to read payments: %w", err)
	}
	return ghino.Snapshot{Transactions: txs, Payments: ps, Currency: s.currency}, nil
}

// Transaction returns one transaction by id.
func (s *Store) Transaction(id string) (ghino.Transaction, error) {
	var tx ghino.Transaction
	if err := s.db.First(&tx, "id = ?", id).Error; err != nil {
		return ghino.Transaction{}, fmt.Errorf("transaction %q: %w", id, err)
	}
	return tx, nil
}

// Payment returns one payment by id.
func (s *Store) Payment(id string) (ghino.Payment, error) {
	var p ghino.Payment
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return ghino.Payment{}, fmt.Errorf("payment %q: %w", id, err)
	}
	return p, nil
}

// TransactionsByPhone returns the transactions recorded for one phone number.
func (s *Store) TransactionsByPhone(phone string) ([]ghino.Transaction, error) {
	var txs []ghino.Transaction
	if err := s.db.Where("phone_number = ?", phone).Order("date, id").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to read transactions for %q: %w", phone, err)
	}
	return txs, nil
}

// PaymentsByTransaction returns the payments recorded against one transaction.
func (s *Store) PaymentsByTransaction(txID string) ([]ghino.Payment, error) {
	var ps []ghino.Payment
	if err := s.db.Where("transaction_id = ?", txID).Order("date, id").Find(&ps).Error; err != nil {
		return nil, fmt.Errorf("failed to read payments for %q: %w", txID, err)
	}
	return ps, nil
}

// InsertTransaction validates and persists a new transaction.
func (s *Store) InsertTransaction(tx ghino.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	s.notify()
	return nil
}

// UpdateTransaction validates and overwrites an existing transaction.
func (s *Store) UpdateTransaction(tx ghino.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	res := s.db.Model(&ghino.Transaction{ID: tx.ID}).
		Select("contact_name", "phone_number", "amount", "type", "date", "note", "reminder_set").
		Updates(&tx)
	if res.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction %q not found", tx.ID)
	}
	s.notify()
	return nil
}

// DeleteTransaction removes a transaction and, by cascade, every payment
// that references it.
func (s *Store) DeleteTransaction(id string) error {
	err := s.db.Transaction(func(db *gorm.DB) error {
		if err := db.Delete(&ghino.Payment{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		return db.Delete(&ghino.Transaction{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete transaction %q: %w", id, err)
	}
	s.notify()
	return nil
}

// InsertPayment validates and persists a new payment. The owning transaction
// must exist; overpayment is not checked.
func (s *Store) InsertPayment(p ghino.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.Transaction(p.TransactionID); err != nil {
		return err
	}
	if err := s.db.Create(&p).Error; err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	s.notify()
	return nil
}

// UpdatePayment validates and overwrites an existing payment.
func (s *Store) UpdatePayment(p ghino.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	res := s.db.Model(&ghino.Payment{ID: p.ID}).
		Select("amount", "date", "note").
		Updates(&p)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment %q not found", p.ID)
	}
	s.notify()
	return nil
}

// DeletePayment removes a single payment.
func (s *Store) DeletePayment(id string) error {
	if err := s.db.Delete(&ghino.Payment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete payment %q: %w", id, err)
	}
	s.notify()
	return nil
}
