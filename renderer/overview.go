// Package renderer turns reports into markdown strings for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hnpage/ghino"
)

func OverviewMarkdown(o *ghino.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Overview on %s", o.Date))
	doc.PlainText(fmt.Sprintf("Owed to me: %s", o.OwedToMe))
	doc.PlainText(fmt.Sprintf("I owe: %s", o.IOwe))
	doc.PlainText(fmt.Sprintf("Net position: %s", o.Net.SignedString()))

	doc.H2("Settled")
	doc.PlainText(fmt.Sprintf("Collected on debts: %s", o.DebitPaid))
	doc.PlainText(fmt.Sprintf("Repaid on loans: %s", o.CreditPaid))

	if len(o.Buckets) > 0 {
		doc.H2("Recent activity")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Period", "New debts", "New loans"},
			Rows:   [][]string{},
		}
		for _, b := range o.Buckets {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("This %s (since %s)", b.Period.Name(), b.From),
				b.Debit.String(),
				b.Credit.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
