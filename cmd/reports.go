package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino/renderer"
)

// balanceCmd displays the net balance of every contact.
type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the net balance of every contact" }
func (*balanceCmd) Usage() string {
	return `gho balance

  Displays the net balance per contact. A positive balance means the
  contact owes you.
`
}
func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalancesMarkdown(snap))
	return subcommands.ExitSuccess
}

// contactsCmd displays per-contact statistics, optionally filtered.
type contactsCmd struct {
	query string
}

func (*contactsCmd) Name() string     { return "contacts" }
func (*contactsCmd) Synopsis() string { return "display per-contact statistics" }
func (*contactsCmd) Usage() string {
	return `gho contacts [-q <query>]

  Displays recorded, paid and remaining amounts per contact. The query
  matches names and phone numbers, case-insensitively.
`
}

func (c *contactsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter contacts by name or phone.")
}

func (c *contactsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.query != "" {
		snap = snap.Search(c.query)
	}
	printMarkdown(renderer.ContactsMarkdown(snap))
	return subcommands.ExitSuccess
}

// contactCmd displays one contact's full statement.
type contactCmd struct {
	phone string
}

func (*contactCmd) Name() string     { return "contact" }
func (*contactCmd) Synopsis() string { return "display one contact's statement" }
func (*contactCmd) Usage() string {
	return `gho contact -phone <phone>

  Displays every transaction with the contact, each with its payments.
`
}

func (c *contactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.phone, "phone", "", "Contact phone number.")
}

func (c *contactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.phone == "" {
		fmt.Fprintln(os.Stderr, "Error: -phone is required.")
		return subcommands.ExitUsageError
	}

	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ContactMarkdown(snap, c.phone))
	return subcommands.ExitSuccess
}

// historyCmd lists transactions, with options for filtering and limiting
// the output.
type historyCmd struct {
	query string
	head  int
	tail  int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded transactions" }
func (*historyCmd) Usage() string {
	return `gho history [-q <query>] [-head <n>] [-tail <n>]

  Lists transactions in date order, with the settled amount against each.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by contact name or phone.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.query != "" {
		snap = snap.Search(c.query)
	}
	snap = snap.Sorted()
	if c.head > 0 && len(snap.Transactions) > c.head {
		snap.Transactions = snap.Transactions[:c.head]
	}
	if c.tail > 0 && len(snap.Transactions) > c.tail {
		snap.Transactions = snap.Transactions[len(snap.Transactions)-c.tail:]
	}

	printMarkdown(renderer.HistoryMarkdown(snap))
	return subcommands.ExitSuccess
}
