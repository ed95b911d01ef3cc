package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino/renderer"
)

// rmCmd deletes a transaction and, through the cascade, its payments.
type rmCmd struct {
	id  string
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction and its payments" }
func (*rmCmd) Usage() string {
	return `gho rm -id <transaction> [-y]

  Deletes a transaction. All payments recorded against it are deleted too.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to delete.")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	payments, err := db.PaymentsByTransaction(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		prompt := fmt.Sprintf("Delete %q and its %d payments?", renderer.Entry(tx, db.Currency()), len(payments))
		if !confirm(prompt) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := db.DeleteTransaction(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s and %d payments.\n", c.id, len(payments))
	return subcommands.ExitSuccess
}
