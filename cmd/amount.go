package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
)

type amountCmd struct {
	json  bool
	query string
}

func (*amountCmd) Name() string { return "amount" }
func (*amountCmd) Synopsis() string {
	return "parse amounts and print them in canonical form"
}
func (*amountCmd) Usage() string {
	return `hl amount [-json] [-q <jsonpath>] [--] [<amount>...]

  Parses each argument as an amount, written either in the suffix form
  ("-100 EUR") or in the prefix form ("EUR -100"), and prints it in the
  canonical suffix form. Without arguments, amounts are read from the
  standard input, one per line.

  Arguments starting with '-' are read as flags: put "--" before the
  amounts when the first one is negative.

  With -json the amount is printed as a JSON object with a "currency" and a
  "value" field. With -q, a jsonpath query is evaluated against that object.

Usage Examples:
$ hl amount "EUR -1 000,50"
-1000.50 EUR

$ hl amount -q '$.currency' '$12.5'
$

$ hl amount -- "-100 EUR"
-100 EUR

`
}

func (p *amountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.json, "json", false, "Print the amount as JSON.")
	f.StringVar(&p.query, "q", "", "Print the result of a jsonpath query on the JSON form, e.g. '$.value'.")
}

func (p *amountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(f.Args(), os.Stdin, os.Stdout, os.Stderr)
}

// run parses and prints each input, reading them from stdin when there are none.
func (p *amountCmd) run(inputs []string, stdin io.Reader, stdout, stderr io.Writer) subcommands.ExitStatus {
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "Error reading standard input: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	status := subcommands.ExitSuccess
	for _, input := range inputs {
		a, err := hledger.ParseAmount(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing %q: %v\n", input, err)
			status = subcommands.ExitFailure
			continue
		}
		logger.Debug().Str("input", input).Stringer("amount", a).Msg("amount parsed")

		out, err := p.format(a)
		if err != nil {
			fmt.Fprintf(stderr, "Error formatting %q: %v\n", input, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	return status
}

// format returns the output line for a.
func (p *amountCmd) format(a hledger.Amount) (string, error) {
	if !p.json && p.query == "" {
		return a.String(), nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	if p.query == "" {
		return string(data), nil
	}
	return queryJSON(data, p.query)
}
