package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hnpage/ghino"
)

// BalancesMarkdown renders the net balance of every contact. A positive
// balance means the contact owes the user.
func BalancesMarkdown(snap ghino.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balances")

	balances := snap.BalanceByContact()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Name", "Phone", "Balance"},
		Rows:   [][]string{},
	}
	for _, c := range ghino.SortedContacts(balances) {
		table.Rows = append(table.Rows, []string{
			c.Name,
			c.Phone,
			balances[c].SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ContactsMarkdown renders per-contact statistics: gross recorded amount,
// amount settled, and what remains open.
func ContactsMarkdown(snap ghino.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Contacts")

	stats := snap.ContactStats()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Phone", "Recorded", "Paid", "Remaining"},
		Rows:   [][]string{},
	}
	for _, c := range ghino.SortedContacts(stats) {
		s := stats[c]
		table.Rows = append(table.Rows, []string{
			c.Name,
			c.Phone,
			s.TotalDebt.String(),
			s.TotalPaid.String(),
			s.Remaining.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d contacts.", len(stats)))

	return doc.String()
}
