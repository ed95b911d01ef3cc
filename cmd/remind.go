package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino"
)

// remindCmd delivers payment reminders after the scheduling delay. Without
// -id it covers every flagged transaction that is not fully settled.
type remindCmd struct {
	id string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "deliver due payment reminders" }
func (*remindCmd) Usage() string {
	return `gho remind [-id <transaction>]

  Schedules payment reminders and waits for their delivery. Without -id,
  every flagged transaction with an outstanding amount is reminded.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Remind only this transaction.")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	var due []ghino.Transaction
	if c.id != "" {
		tx, err := db.Transaction(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading transaction %q: %v\n", c.id, err)
			return subcommands.ExitFailure
		}
		due = append(due, tx)
	} else {
		snap, err := db.Snapshot()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, tx := range snap.Sorted().Transactions {
			if tx.ReminderSet && snap.Remaining(tx).IsPositive() {
				due = append(due, tx)
			}
		}
	}

	if len(due) == 0 {
		fmt.Println("Nothing to remind.")
		return subcommands.ExitSuccess
	}

	scheduler := ghino.NewScheduler(ghino.WriterNotifier{W: os.Stdout})
	for _, tx := range due {
		scheduler.Schedule(tx, db.Currency())
	}
	scheduler.Wait()
	return subcommands.ExitSuccess
}
