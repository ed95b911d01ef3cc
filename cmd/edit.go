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

// editCmd amends an existing transaction. Only the provided flags change.
type editCmd struct {
	id     string
	name   string
	phone  string
	amount string
	typ    string
	note   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "amend an existing transaction" }
func (*editCmd) Usage() string {
	return `gho edit -id <transaction> [-name <name>] [-phone <phone>] [-a <amount>] [-type <debit|credit>] [-note <note>]

  Amends an existing transaction. Flags that are not set keep their
  recorded value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to amend.")
	f.StringVar(&c.name, "name", "", "New contact name.")
	f.StringVar(&c.phone, "phone", "", "New contact phone number.")
	f.StringVar(&c.amount, "a", "", "New amount, a positive number.")
	f.StringVar(&c.typ, "type", "", "New type, debit or credit.")
	f.StringVar(&c.note, "note", "", "New note.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	tx, err := db.Transaction(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transaction %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		tx.ContactName = c.name
	}
	if c.phone != "" {
		tx.PhoneNumber = c.phone
	}
	if c.amount != "" {
		amount, err := ghino.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Amount = amount
	}
	if c.typ != "" {
		typ, err := ghino.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Type = typ
	}
	if c.note != "" {
		tx.Note = c.note
	}

	if err := db.UpdateTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated: %s\n", renderer.Entry(tx, db.Currency()))
	return subcommands.ExitSuccess
}
