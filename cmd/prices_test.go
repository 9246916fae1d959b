package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/hledger"
	"github.com/etnz/hledger/date"
)

func TestPricesMarkdown(t *testing.T) {
	prices := []hledger.Price{
		{Commodity: "EUR", Date: date.New(2022, 6, 23), Amount: hledger.A("1.05", "USD")},
		{Commodity: "A|B", Date: date.New(2022, 6, 24), Amount: hledger.A("12.5", "POINTS")},
	}
	want := "| Date | Commodity | Price |\n" +
		"|:-----|:----------|------:|\n" +
		"| 2022-06-23 | EUR | $1.05 |\n" +
		"| 2022-06-24 | A\\|B | 12.5 POINTS |\n"
	if got := pricesMarkdown(prices); got != want {
		t.Errorf("pricesMarkdown() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("# Prices\n\n| Date | Price |\n|:--|--:|\n| 2022-06-23 | $1.05 |\n", "notty")
	if err != nil {
		t.Fatalf("renderMarkdown() unexpected error: %v", err)
	}
	for _, want := range []string{"Prices", "2022-06-23", "$1.05"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderMarkdown() = %q, want it to contain %q", out, want)
		}
	}
}

func TestRenderMarkdownUnknownStyle(t *testing.T) {
	if _, err := renderMarkdown("text", "no-such-style"); err == nil {
		t.Errorf("renderMarkdown() with an unknown style expected an error")
	}
}
