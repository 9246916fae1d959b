package cmd

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
)

func TestAmountFormat(t *testing.T) {
	a := hledger.A("-1000.50", "EUR")
	tests := []struct {
		name string
		cmd  amountCmd
		want string
	}{
		{"canonical", amountCmd{}, "-1000.50 EUR"},
		{"json", amountCmd{json: true}, `{"currency":"EUR","value":-1000.50}`},
		{"query value", amountCmd{query: "$.value"}, "-1000.50"},
		{"query currency", amountCmd{query: "$.currency"}, "EUR"},
		{"query object", amountCmd{json: true, query: "$"}, `{"currency":"EUR","value":-1000.50}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.format(a)
			if err != nil {
				t.Fatalf("format() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAmountFormatBadQuery(t *testing.T) {
	cmd := amountCmd{query: "$.missing"}
	if _, err := cmd.format(hledger.A(1, "EUR")); err == nil {
		t.Errorf("format() with query %q expected an error", cmd.query)
	}
}

func TestAmountNegativeArguments(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--", "-100 EUR", "- 100EUR", "-0 EUR"}, "-100 EUR\n-100 EUR\n-0 EUR\n"},
		{[]string{"-q", "$.value", "--", "-100 EUR"}, "-100\n"},
		{[]string{"EUR 5", "-100 EUR"}, "5 EUR\n-100 EUR\n"},
	}
	for _, tt := range tests {
		var p amountCmd
		f := flag.NewFlagSet("amount", flag.ContinueOnError)
		p.SetFlags(f)
		if err := f.Parse(tt.args); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.args, err)
			continue
		}
		var stdout, stderr bytes.Buffer
		if status := p.run(f.Args(), strings.NewReader(""), &stdout, &stderr); status != subcommands.ExitSuccess {
			t.Errorf("amount %q exited with %v: %s", tt.args, status, stderr.String())
		}
		if got := stdout.String(); got != tt.want {
			t.Errorf("amount %q printed %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestAmountNegativeArgumentWithoutSeparator(t *testing.T) {
	var p amountCmd
	f := flag.NewFlagSet("amount", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	p.SetFlags(f)
	if err := f.Parse([]string{"-100 EUR"}); err == nil {
		t.Errorf("Parse(-100 EUR) expected a flag error, got arguments %q", f.Args())
	}
}

func TestAmountStdin(t *testing.T) {
	var p amountCmd
	var stdout, stderr bytes.Buffer
	status := p.run(nil, strings.NewReader("-100 EUR\nEUR\n"), &stdout, &stderr)
	if status != subcommands.ExitFailure {
		t.Errorf("run() = %v, want %v", status, subcommands.ExitFailure)
	}
	if got, want := stdout.String(), "-100 EUR\n"; got != want {
		t.Errorf("run() printed %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), `"EUR"`) {
		t.Errorf("run() stderr = %q, want the failing input", stderr.String())
	}
}
