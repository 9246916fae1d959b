package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	commodity string
}

func (*pricesCmd) Name() string { return "prices" }
func (*pricesCmd) Synopsis() string {
	return "list the price directives of a journal"
}
func (*pricesCmd) Usage() string {
	return `hl prices [-c <commodity>] [<file>]

  Lists the price directives ("P" lines) of a journal, sorted by date, as a
  table. Prices in a known ISO 4217 currency are displayed with that
  currency's symbol and separators.

  The file defaults to $HL_LEDGER_FILE, or the -f global flag.
`
}

func (p *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.commodity, "c", "", "Only list the prices of this commodity.")
}

func (p *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := journalPath(f.Args())
	j, err := decodeJournalFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	prices := j.Prices()
	if p.commodity != "" {
		var selected []hledger.Price
		for _, price := range prices {
			if price.Commodity == p.commodity {
				selected = append(selected, price)
			}
		}
		prices = selected
	}
	if len(prices) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no prices found in %s.\n", path)
		return subcommands.ExitSuccess
	}

	printMarkdown(pricesMarkdown(prices))
	return subcommands.ExitSuccess
}

// pricesMarkdown renders prices as a markdown table.
func pricesMarkdown(prices []hledger.Price) string {
	var b strings.Builder
	b.WriteString("| Date | Commodity | Price |\n")
	b.WriteString("|:-----|:----------|------:|\n")
	for _, p := range prices {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Date, escapeCell(p.Commodity), escapeCell(p.Amount.Display()))
	}
	return b.String()
}

func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
