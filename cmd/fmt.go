package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a journal file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `hl fmt [-w] [<file>]

  Validates and formats a journal file. Amounts are written in the suffix
  form, postings and prices are aligned the canonical way, and the comments
  of a transaction are merged into its tags. The canonical form is printed
  on the standard output, or written back into the file with -w.

  The file defaults to $HL_LEDGER_FILE, or the -f global flag.

Usage Examples:
# Rewrites the default journal in place.
$ hl fmt -w

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.write, "w", false, "Write the result back into the file instead of the standard output.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := journalPath(f.Args())
	j, err := decodeJournalFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := hledger.EncodeJournal(&buf, j); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting journal %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	if !p.write {
		os.Stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted journal %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", path)
	return subcommands.ExitSuccess
}
