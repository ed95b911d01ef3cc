package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/hnpage/ghino"
)

// HistoryMarkdown renders every transaction in date order, with the amount
// already settled against each one.
func HistoryMarkdown(snap ghino.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Name", "Type", "Amount", "Paid", "Remaining", "Note"},
		Rows:   [][]string{},
	}
	for _, tx := range snap.Sorted().Transactions {
		table.Rows = append(table.Rows, []string{
			tx.Day().String(),
			tx.ContactName,
			string(tx.Type),
			ghino.M(tx.Amount, snap.Currency).String(),
			snap.PaidAmount(tx.ID).String(),
			snap.Remaining(tx).SignedString(),
			tx.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}

// ContactMarkdown renders one contact's statement: their statistics, then
// each transaction with its payments.
func ContactMarkdown(snap ghino.Snapshot, phone string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	txs := snap.ByPhone(phone)
	if len(txs) == 0 {
		doc.H1("Contact " + phone)
		doc.PlainText("No recorded transactions.")
		return doc.String()
	}

	name := txs[len(txs)-1].ContactName
	doc.H1(name + " (" + phone + ")")

	for c, s := range snap.ContactStats() {
		if c.Phone != phone {
			continue
		}
		doc.PlainText("Recorded: " + s.TotalDebt.String())
		doc.PlainText("Paid: " + s.TotalPaid.String())
		doc.PlainText("Remaining: " + s.Remaining.SignedString())
	}

	for _, tx := range txs {
		doc.H2(tx.Day().String() + " " + Entry(tx, snap.Currency))
		for _, p := range snap.PaymentsFor(tx.ID) {
			doc.BulletList(Settlement(p, snap.Currency))
		}
	}

	return doc.String()
}
