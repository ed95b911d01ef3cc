package ghino

import (
	"sort"

	"github.com/shopspring/decimal"
)

// This file holds the ledger aggregation model: the rules that turn the full
// set of transactions and payments into per-contact balances and global
// totals. All operations are total functions over possibly-empty snapshots;
// empty input yields empty maps and zero totals, never an error.

// Stats summarizes one contact's activity.
type Stats struct {
	// TotalDebt is the gross activity: debit amounts plus credit amounts.
	// It is intentionally not netted, to show total volume separately from
	// the net balance.
	TotalDebt Money
	// TotalPaid is the sum of payments whose owning transaction belongs to
	// this contact.
	TotalPaid Money
	// Remaining is debits minus credits minus payments. It may go negative
	// when payments exceed the recorded debt.
	Remaining Money
}

// group indexes transactions by phone number, preserving snapshot order
// within each group.
func (s Snapshot) group() map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, tx := range s.Transactions {
		groups[tx.PhoneNumber] = append(groups[tx.PhoneNumber], tx)
	}
	return groups
}

// resolveName returns the contact name of the latest-dated transaction in the
// group. When two transactions share the maximum timestamp, the last one in
// snapshot order wins.
func resolveName(txs []Transaction) string {
	var name string
	var latest int64
	for _, tx := range txs {
		if tx.Date >= latest {
			latest = tx.Date
			name = tx.ContactName
		}
	}
	return name
}

// BalanceByContact computes the net signed balance per contact:
// sum of debits minus sum of credits, independent of payments.
// Positive means the contact owes the user; negative means the user owes.
// Every phone number with at least one transaction appears exactly once.
func (s Snapshot) BalanceByContact() map[Contact]Money {
	balances := make(map[Contact]Money)
	for phone, txs := range s.group() {
		sum := decimal.Zero
		for _, tx := range txs {
			if tx.Type == Debit {
				sum = sum.Add(tx.Amount)
			} else {
				sum = sum.Sub(tx.Amount)
			}
		}
		balances[Contact{Phone: phone, Name: resolveName(txs)}] = M(sum, s.Currency)
	}
	return balances
}

// ContactStats computes, per contact, the gross activity, the total paid, and
// the remaining balance after payments.
func (s Snapshot) ContactStats() map[Contact]Stats {
	// Index payments by owning transaction first; each group then sums the
	// payments of its own transactions.
	paid := make(map[string]decimal.Decimal)
	for _, p := range s.Payments {
		paid[p.TransactionID] = paid[p.TransactionID].Add(p.Amount)
	}

	stats := make(map[Contact]Stats)
	for phone, txs := range s.group() {
		var gross, net, settled decimal.Decimal
		for _, tx := range txs {
			gross = gross.Add(tx.Amount)
			if tx.Type == Debit {
				net = net.Add(tx.Amount)
			} else {
				net = net.Sub(tx.Amount)
			}
			settled = settled.Add(paid[tx.ID])
		}
		stats[Contact{Phone: phone, Name: resolveName(txs)}] = Stats{
			TotalDebt: M(gross, s.Currency),
			TotalPaid: M(settled, s.Currency),
			Remaining: M(net.Sub(settled), s.Currency),
		}
	}
	return stats
}

// TotalDebit sums the amounts of all debit transactions.
func (s Snapshot) TotalDebit() Money { return s.totalOf(Debit) }

// TotalCredit sums the amounts of all credit transactions.
func (s Snapshot) TotalCredit() Money { return s.totalOf(Credit) }

func (s Snapshot) totalOf(typ TxType) Money {
	sum := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.Type == typ {
			sum = sum.Add(tx.Amount)
		}
	}
	return M(sum, s.Currency)
}

// TotalDebitPaid sums payments whose owning transaction is a debit.
func (s Snapshot) TotalDebitPaid() Money { return s.totalPaidOf(Debit) }

// TotalCreditPaid sums payments whose owning transaction is a credit.
func (s Snapshot) TotalCreditPaid() Money { return s.totalPaidOf(Credit) }

func (s Snapshot) totalPaidOf(typ TxType) Money {
	ids := make(map[string]bool)
	for _, tx := range s.Transactions {
		if tx.Type == typ {
			ids[tx.ID] = true
		}
	}
	sum := decimal.Zero
	for _, p := range s.Payments {
		if ids[p.TransactionID] {
			sum = sum.Add(p.Amount)
		}
	}
	return M(sum, s.Currency)
}

// PaidAmount sums the payments recorded against one transaction.
// An unknown id yields zero.
func (s Snapshot) PaidAmount(txID string) Money {
	sum := decimal.Zero
	for _, p := range s.Payments {
		if p.TransactionID == txID {
			sum = sum.Add(p.Amount)
		}
	}
	return M(sum, s.Currency)
}

// Remaining returns the transaction's face value minus its payments.
// Payments exceeding the face value drive the result negative; overpayment is
// not guarded against here, only surfaced by the rendering layer.
func (s Snapshot) Remaining(tx Transaction) Money {
	return M(tx.Amount, s.Currency).Sub(s.PaidAmount(tx.ID))
}

// PeriodTotals computes the gross debit and credit volume recorded since the
// start of the period containing 'on' (local time). Payments are never netted
// into time-bucketed totals.
func (s Snapshot) PeriodTotals(on Date, p Period) (debit, credit Money) {
	start := on.StartOf(p)
	d, c := decimal.Zero, decimal.Zero
	for _, tx := range s.Transactions {
		if tx.Day().Before(start) {
			continue
		}
		if tx.Type == Debit {
			d = d.Add(tx.Amount)
		} else {
			c = c.Add(tx.Amount)
		}
	}
	return M(d, s.Currency), M(c, s.Currency)
}

// Overview is the data behind the overview report: global net totals plus the
// gross volume of each reporting bucket.
type Overview struct {
	Date     Date
	Currency string

	// OwedToMe sums the positive contact balances; IOwe sums the magnitude
	// of the negative ones. Net is TotalDebit - TotalCredit.
	OwedToMe Money
	IOwe     Money
	Net      Money

	DebitPaid  Money
	CreditPaid Money

	Buckets []Bucket
}

// Bucket is the gross debit/credit volume since the start of one period.
type Bucket struct {
	Period Period
	From   Date
	Debit  Money
	Credit Money
}

// NewOverview derives the overview report from a snapshot as of 'on'.
func (s Snapshot) NewOverview(on Date) *Overview {
	o := &Overview{
		Date:       on,
		Currency:   s.Currency,
		OwedToMe:   M(0, s.Currency),
		IOwe:       M(0, s.Currency),
		Net:        s.TotalDebit().Sub(s.TotalCredit()),
		DebitPaid:  s.TotalDebitPaid(),
		CreditPaid: s.TotalCreditPaid(),
	}
	for _, balance := range s.BalanceByContact() {
		if balance.IsPositive() {
			o.OwedToMe = o.OwedToMe.Add(balance)
		} else {
			o.IOwe = o.IOwe.Sub(balance)
		}
	}
	for _, p := range Periods() {
		debit, credit := s.PeriodTotals(on, p)
		o.Buckets = append(o.Buckets, Bucket{Period: p, From: on.StartOf(p), Debit: debit, Credit: credit})
	}
	return o
}

// SortedContacts flattens a per-contact map into deterministic phone order,
// for stable rendering and tests.
func SortedContacts[V any](m map[Contact]V) []Contact {
	contacts := make([]Contact, 0, len(m))
	for c := range m {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].Phone < contacts[j].Phone })
	return contacts
}
