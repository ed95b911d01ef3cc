package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino/sheets"
)

// syncCmd pushes the history to the configured remote sheet.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "push the history to the remote sheet" }
func (*syncCmd) Usage() string {
	return `gho sync

  Pushes the history to the sheet service configured through GHINO_SHEET_URL
  and GHINO_SHEET_TOKEN. Rows deleted locally are kept remotely, tagged
  "deleted".
`
}
func (*syncCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if config().SheetURL == "" {
		fmt.Fprintln(os.Stderr, "Error: no sheet service configured, set GHINO_SHEET_URL.")
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

	client := sheets.NewClient(config().SheetURL, config().SheetToken)
	if err := client.Sync(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Synced %d transactions and %d payments.\n", len(snap.Transactions), len(snap.Payments))
	return subcommands.ExitSuccess
}
