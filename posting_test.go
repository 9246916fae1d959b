package hledger

import (
	"errors"
	"testing"
)

func TestPostingString(t *testing.T) {
	tests := []struct {
		name    string
		posting Posting
		want    string
	}{
		{
			name:    "pending with amount",
			posting: Posting{Status: Pending, Account: "expenses:food", Amount: ptr(EUR(100))},
			want:    "  ! expenses:food  100 EUR",
		},
		{
			name:    "unit price",
			posting: Posting{Status: Pending, Account: "expenses:food", Amount: ptr(EUR(100)), UnitPrice: ptr(USD("1.05"))},
			want:    "  ! expenses:food  100 EUR @ 1.05 USD",
		},
		{
			name:    "total price",
			posting: Posting{Status: Cleared, Account: "assets:broker", Amount: ptr(A(10, "AAPL")), TotalPrice: ptr(USD(1500))},
			want:    "  * assets:broker  10 AAPL @@ 1500 USD",
		},
		{
			name:    "unmarked without amount",
			posting: Posting{Account: "assets:cash"},
			want:    "  assets:cash",
		},
		{
			name:    "balance assertion",
			posting: Posting{Account: "assets:cash", Amount: ptr(EUR(-100)), BalanceAssertion: ptr(EUR(400))},
			want:    "  assets:cash  -100 EUR = 400 EUR",
		},
		{
			name:    "assertion only",
			posting: Posting{Account: "assets:cash", BalanceAssertion: ptr(EUR(0))},
			want:    "  assets:cash  = 0 EUR",
		},
		{
			name:    "tags",
			posting: Posting{Account: "expenses:food", Amount: ptr(EUR(5)), Tags: []Tag{NewTag("cash", "atm"), {Name: "trip"}}},
			want:    "  expenses:food  5 EUR  ; cash:atm, trip:",
		},
		{
			name:    "quoted commodity",
			posting: Posting{Account: "assets:funds", Amount: ptr(A(3, "MY FUND 2"))},
			want:    `  assets:funds  3 "MY FUND 2"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.posting.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			back, err := ParsePosting(tt.want)
			if err != nil {
				t.Fatalf("ParsePosting(%q) unexpected error: %v", tt.want, err)
			}
			if got := back.String(); got != tt.want {
				t.Errorf("ParsePosting(%q).String() = %q", tt.want, got)
			}
		})
	}
}

func TestPostingStringPanicsOnConflictingPrice(t *testing.T) {
	p := Posting{
		Account:    "expenses:food",
		Amount:     ptr(EUR(100)),
		UnitPrice:  ptr(USD("1.05")),
		TotalPrice: ptr(USD(105)),
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("String() did not panic with both a unit and a total price")
		}
	}()
	_ = p.String()
}

func TestPostingValidate(t *testing.T) {
	conflict := Posting{Account: "a", Amount: ptr(EUR(1)), UnitPrice: ptr(USD(1)), TotalPrice: ptr(USD(1))}
	if err := conflict.Validate(); !errors.Is(err, ErrConflictingPrice) {
		t.Errorf("Validate() = %v, want %v", err, ErrConflictingPrice)
	}
	if err := (Posting{}).Validate(); !errors.Is(err, ErrInvalidPosting) {
		t.Errorf("Validate() of an empty posting = %v, want %v", err, ErrInvalidPosting)
	}
	if err := (Posting{Account: "a"}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestParsePosting(t *testing.T) {
	got, err := ParsePosting("\t*   assets:cash\t EUR -5 ; note: x")
	if err != nil {
		t.Fatalf("ParsePosting() unexpected error: %v", err)
	}
	if got.Status != Cleared || got.Account != "assets:cash" {
		t.Errorf("ParsePosting() = %v, want a cleared assets:cash posting", got)
	}
	if got.Amount == nil || !got.Amount.Equal(EUR(-5)) {
		t.Errorf("ParsePosting() amount = %v, want -5 EUR", got.Amount)
	}
	if want := "  * assets:cash  -5 EUR  ; note:"; got.String() != want {
		t.Errorf("ParsePosting().String() = %q, want %q", got.String(), want)
	}
}

func TestParsePostingAccountWithSpaces(t *testing.T) {
	got, err := ParsePosting("  expenses:my food  5 EUR")
	if err != nil {
		t.Fatalf("ParsePosting() unexpected error: %v", err)
	}
	if got.Account != "expenses:my food" {
		t.Errorf("ParsePosting() account = %q, want %q", got.Account, "expenses:my food")
	}
}

func TestParsePostingErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"expenses:food  100 EUR", ErrInvalidPosting},
		{"  ", ErrInvalidPosting},
		{"  a  @ 1 USD", ErrInvalidPosting},
		{"  a  100", ErrUnmatchedAlternative},
		{`  a  100 "EUR`, ErrUnterminatedQuote},
		{"  a  1 EUR @ 1 USD @@ 2 USD", ErrTrailingInput},
	}
	for _, tt := range tests {
		if _, err := ParsePosting(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("ParsePosting(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestPostingCost(t *testing.T) {
	tests := []struct {
		posting Posting
		want    Amount
		ok      bool
	}{
		{Posting{Account: "a", Amount: ptr(A(10, "AAPL")), UnitPrice: ptr(USD(150))}, USD(1500), true},
		{Posting{Account: "a", Amount: ptr(A(-10, "AAPL")), TotalPrice: ptr(USD(1500))}, USD(-1500), true},
		{Posting{Account: "a", Amount: ptr(A(10, "AAPL"))}, Amount{}, false},
		{Posting{Account: "a"}, Amount{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.posting.Cost()
		if ok != tt.ok || (ok && !got.Equal(tt.want)) {
			t.Errorf("%v.Cost() = %v, %v, want %v, %v", tt.posting, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAccount(t *testing.T) {
	a := Account("expenses:food:restaurant")
	if got := a.Parent(); got != "expenses:food" {
		t.Errorf("Parent() = %q, want %q", got, "expenses:food")
	}
	if got := Account("expenses").Parent(); got != "" {
		t.Errorf("Parent() = %q, want empty", got)
	}
	if got := a.Parts(); len(got) != 3 || got[2] != "restaurant" {
		t.Errorf("Parts() = %q", got)
	}
	if !a.IsUnder("expenses") || a.IsUnder("exp") {
		t.Errorf("IsUnder() must match whole account components")
	}
}
