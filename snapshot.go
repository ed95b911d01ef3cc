package ghino

import (
	"sort"
	"strings"
)

// Contact is the derived identity of a debtor or creditor.
//
// Phone is the only stable key; Name is resolved dynamically as the contact
// name attached to the most recent transaction for that phone number.
type Contact struct {
	Phone string
	Name  string
}

// Snapshot is an immutable, point-in-time view of all transactions and
// payments. Every aggregation is a pure function of a snapshot: recomputing
// on an unchanged snapshot yields identical output.
type Snapshot struct {
	Transactions []Transaction
	Payments     []Payment
	Currency     string
}

// Sorted returns a copy of the snapshot with transactions and payments in
// chronological order. The sort is stable: records sharing a timestamp keep
// their original relative order.
func (s Snapshot) Sorted() Snapshot {
	txs := make([]Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date < txs[j].Date })
	ps := make([]Payment, len(s.Payments))
	copy(ps, s.Payments)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Date < ps[j].Date })
	return Snapshot{Transactions: txs, Payments: ps, Currency: s.Currency}
}

// Transaction returns the transaction with the given id.
func (s Snapshot) Transaction(id string) (Transaction, bool) {
	for _, tx := range s.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// ByPhone returns the transactions recorded for one phone number, in
// snapshot order.
func (s Snapshot) ByPhone(phone string) []Transaction {
	var txs []Transaction
	for _, tx := range s.Transactions {
		if tx.PhoneNumber == phone {
			txs = append(txs, tx)
		}
	}
	return txs
}

// PaymentsFor returns the payments owned by the given transaction.
func (s Snapshot) PaymentsFor(txID string) []Payment {
	var ps []Payment
	for _, p := range s.Payments {
		if p.TransactionID == txID {
			ps = append(ps, p)
		}
	}
	return ps
}

// Search filters the snapshot down to transactions whose contact name or
// phone number contains the query (case-insensitive), keeping only payments
// that reference a surviving transaction.
func (s Snapshot) Search(query string) Snapshot {
	if strings.TrimSpace(query) == "" {
		return s
	}
	q := strings.ToLower(query)
	kept := make(map[string]bool)
	var txs []Transaction
	for _, tx := range s.Transactions {
		if strings.Contains(strings.ToLower(tx.ContactName), q) ||
			strings.Contains(strings.ToLower(tx.PhoneNumber), q) {
			txs = append(txs, tx)
			kept[tx.ID] = true
		}
	}
	var ps []Payment
	for _, p := range s.Payments {
		if kept[p.TransactionID] {
			ps = append(ps, p)
		}
	}
	return Snapshot{Transactions: txs, Payments: ps, Currency: s.Currency}
}
