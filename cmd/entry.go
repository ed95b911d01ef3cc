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

// entryCmd records a new debit or credit. Both subcommands share the same
// flags and only differ by the recorded type.
type entryCmd struct {
	txType string

	name   string
	phone  string
	amount string
	date   string
	note   string
	remind bool
}

func (c *entryCmd) Name() string { return c.txType }
func (c *entryCmd) Synopsis() string {
	if c.txType == "debit" {
		return "record money lent to a contact"
	}
	return "record money borrowed from a contact"
}
func (c *entryCmd) Usage() string {
	return fmt.Sprintf(`gho %s -phone <phone> -a <amount> [-name <name>] [-note <note>] [-remind]

  Records a new %s transaction. When -name is omitted the name is looked up
  in the contact directory.
`, c.txType, c.txType)
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Contact name. Defaults to the directory entry for -phone.")
	f.StringVar(&c.phone, "phone", "", "Contact phone number.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive number.")
	f.StringVar(&c.date, "d", "", "Date of the transaction. Defaults to now.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
	f.BoolVar(&c.remind, "remind", false, "Schedule a payment reminder for this transaction.")
}

func (c *entryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := ghino.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount, err := ghino.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	name := c.name
	if name == "" {
		if found, ok := LoadContacts().Name(c.phone); ok {
			name = found
		}
	}

	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	tx := ghino.NewTransaction(name, c.phone, amount, typ, c.note, c.remind)
	if c.date != "" {
		on, err := ghino.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = on.Milli()
	}
	if err := db.InsertTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%s)\n", renderer.Entry(tx, db.Currency()), tx.ID)

	if c.remind {
		scheduler := ghino.NewScheduler(ghino.WriterNotifier{W: os.Stdout})
		scheduler.Schedule(tx, db.Currency())
		scheduler.Wait()
	}
	return subcommands.ExitSuccess
}
