package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
)

type tagCmd struct {
	extract bool
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "parse tags" }
func (*tagCmd) Usage() string {
	return `hl tag [-x] <text>...

  Parses each argument as a single tag, "name:" or "name:value", and prints it.

  With -x, each argument is a comment text and every tag found in it is
  printed, one per line. Words that are not tags are ignored.

Usage Examples:
$ hl tag -x "paid cash:atm, trip:"
cash:atm
trip:

`
}

func (p *tagCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.extract, "x", false, "Extract the tags found in comment texts.")
}

func (p *tagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing tag argument")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, input := range f.Args() {
		if p.extract {
			for _, tag := range hledger.ExtractTags(input) {
				fmt.Println(tag)
			}
			continue
		}
		tag, err := hledger.ParseTag(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", input, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println(tag)
	}
	return status
}
