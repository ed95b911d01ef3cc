package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hnpage/ghino"
)

func testSnapshot() ghino.Snapshot {
	return ghino.Snapshot{
		Transactions: []ghino.Transaction{
			{ID: "tx-1", ContactName: "Alice", PhoneNumber: "111", Amount: decimal.NewFromInt(100000), Type: ghino.Debit, Date: 1700000000000},
			{ID: "tx-2", ContactName: "Bob", PhoneNumber: "222", Amount: decimal.NewFromInt(50000), Type: ghino.Credit, Date: 1700000500000},
		},
		Payments: []ghino.Payment{
			{ID: "pay-1", TransactionID: "tx-1", Amount: decimal.NewFromInt(40000), Date: 1700000100000},
		},
		Currency: "VND",
	}
}

func TestOverviewMarkdown(t *testing.T) {
	snap := testSnapshot()
	got := OverviewMarkdown(snap.NewOverview(ghino.NewDate(2023, 11, 20)))

	for _, want := range []string{"# Overview on 2023-11-20", "Owed to me", "I owe", "Recent activity"} {
		if !strings.Contains(got, want) {
			t.Errorf("overview misses %q:\n%s", want, got)
		}
	}
}

func TestBalancesMarkdown(t *testing.T) {
	got := BalancesMarkdown(testSnapshot())
	if !strings.Contains(got, "Alice") || !strings.Contains(got, "Bob") {
		t.Errorf("balances misses a contact:\n%s", got)
	}
	// Alice: 100000 debit minus 40000 paid is irrelevant here, balance is debit-credit
	if !strings.Contains(got, "111") {
		t.Errorf("balances misses a phone column:\n%s", got)
	}
}

func TestContactsMarkdown(t *testing.T) {
	got := ContactsMarkdown(testSnapshot())
	for _, want := range []string{"Recorded", "Paid", "Remaining", "2 contacts."} {
		if !strings.Contains(got, want) {
			t.Errorf("contacts misses %q:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	got := HistoryMarkdown(testSnapshot())
	if !strings.Contains(got, "# History") {
		t.Errorf("missing title:\n%s", got)
	}
	// rows must come out in date order
	if strings.Index(got, "Alice") > strings.Index(got, "Bob") {
		t.Errorf("history rows out of order:\n%s", got)
	}
}

func TestContactMarkdown(t *testing.T) {
	got := ContactMarkdown(testSnapshot(), "111")
	if !strings.Contains(got, "Alice (111)") {
		t.Errorf("missing contact title:\n%s", got)
	}
	if !strings.Contains(got, "Paid") {
		t.Errorf("missing settlement line:\n%s", got)
	}

	got = ContactMarkdown(testSnapshot(), "999")
	if !strings.Contains(got, "No recorded transactions.") {
		t.Errorf("unknown phone should render an empty statement:\n%s", got)
	}
}

func TestEntry(t *testing.T) {
	snap := testSnapshot()
	if got := Entry(snap.Transactions[0], "VND"); !strings.Contains(got, "Lent") || !strings.Contains(got, "Alice") {
		t.Errorf("Entry() = %q", got)
	}
	if got := Entry(snap.Transactions[1], "VND"); !strings.Contains(got, "Borrowed") {
		t.Errorf("Entry() = %q", got)
	}
}
