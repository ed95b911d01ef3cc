package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/hnpage/ghino/export"
)

// exportCmd writes the history to a portable document. The format follows
// the output file extension.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the history to an xlsx workbook or a PDF" }
func (*exportCmd) Usage() string {
	return `gho export -o <file.xlsx|file.pdf>

  Exports the full transaction and payment history. The output format is
  chosen from the file extension.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "history.xlsx", "Output file, .xlsx or .pdf.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch filepath.Ext(c.output) {
	case ".xlsx":
		err = export.Workbook(out, snap)
	case ".pdf":
		err = export.PDF(out, snap)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q, use .xlsx or .pdf.\n", filepath.Ext(c.output))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d transactions to %s\n", len(snap.Transactions), c.output)
	return subcommands.ExitSuccess
}
