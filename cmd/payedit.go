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

// payEditCmd amends a recorded payment.
type payEditCmd struct {
	id     string
	amount string
	note   string
}

func (*payEditCmd) Name() string     { return "pay-edit" }
func (*payEditCmd) Synopsis() string { return "amend a recorded payment" }
func (*payEditCmd) Usage() string {
	return `gho pay-edit -id <payment> [-a <amount>] [-note <note>]

  Amends a recorded payment. Flags that are not set keep their recorded value.
`
}

func (c *payEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Payment to amend.")
	f.StringVar(&c.amount, "a", "", "New amount, a positive number.")
	f.StringVar(&c.note, "note", "", "New note.")
}

func (c *payEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	p, err := db.Payment(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading payment %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if c.amount != "" {
		amount, err := ghino.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.Amount = amount
	}
	if c.note != "" {
		p.Note = c.note
	}

	if err := db.UpdatePayment(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating payment: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated: %s\n", renderer.Settlement(p, db.Currency()))
	return subcommands.ExitSuccess
}

// payRmCmd deletes a recorded payment.
type payRmCmd struct {
	id  string
	yes bool
}

func (*payRmCmd) Name() string     { return "pay-rm" }
func (*payRmCmd) Synopsis() string { return "delete a recorded payment" }
func (*payRmCmd) Usage() string {
	return `gho pay-rm -id <payment> [-y]

  Deletes a recorded payment. The owning transaction is untouched.
`
}

func (c *payRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Payment to delete.")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *payRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	p, err := db.Payment(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading payment %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Delete %q?", renderer.Settlement(p, db.Currency()))) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if err := db.DeletePayment(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting payment: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s.\n", c.id)
	return subcommands.ExitSuccess
}
