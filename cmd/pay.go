package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino"
	"github.com/hnpage/ghino/renderer"
)

// payCmd records a partial payment against a transaction.
type payCmd struct {
	id     string
	amount string
	date   string
	note   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a transaction" }
func (*payCmd) Usage() string {
	return `gho pay -id <transaction> -a <amount> [-note <note>]

  Records a partial or full payment against an existing transaction.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to pay against.")
	f.StringVar(&c.amount, "a", "", "Amount paid, a positive number.")
	f.StringVar(&c.date, "d", "", "Date of the payment. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := ghino.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	p := ghino.NewPayment(c.id, amount, c.note)
	if c.date != "" {
		on, err := ghino.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.Date = on.Milli()
	}
	if err := db.InsertPayment(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording payment: %v\n", err)
		return subcommands.ExitFailure
	}

	snap, err := db.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%s)\n", renderer.Settlement(p, db.Currency()), p.ID)
	if tx, ok := snap.Transaction(c.id); ok {
		fmt.Printf("Remaining: %s\n", snap.Remaining(tx).SignedString())
	}
	return subcommands.ExitSuccess
}
