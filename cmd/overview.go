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

// overviewCmd displays the global position: what is owed, what is due, and
// recent activity buckets.
type overviewCmd struct {
	date string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the global debt position" }
func (*overviewCmd) Usage() string {
	return `gho overview [-d <date>]

  Displays total amounts owed and due, settled totals, and the activity of
  the current day, week, month and year.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", ghino.Today().String(), "Date for the overview.")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := ghino.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	printMarkdown(renderer.OverviewMarkdown(snap.NewOverview(on)))
	return subcommands.ExitSuccess
}
