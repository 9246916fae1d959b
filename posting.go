package hledger

import (
	"strings"
)

// Posting is one account line of a transaction.
//
// UnitPrice and TotalPrice are mutually exclusive: a posting is priced either
// per unit ("@") or in total ("@@"). Code that builds postings must enforce it,
// see Validate.
type Posting struct {
	Status           Status
	Account          Account
	Amount           *Amount
	UnitPrice        *Amount
	TotalPrice       *Amount
	BalanceAssertion *Amount
	Tags             []Tag
}

// Validate checks the posting invariants.
func (p Posting) Validate() error {
	if p.Account == "" {
		return ErrInvalidPosting
	}
	if p.UnitPrice != nil && p.TotalPrice != nil {
		return ErrConflictingPrice
	}
	return nil
}

// String renders the posting as a journal line, e.g.
//
//	"  ! expenses:food  100 EUR @ 1.05 USD"
//
// It panics if both UnitPrice and TotalPrice are set.
func (p Posting) String() string {
	if p.UnitPrice != nil && p.TotalPrice != nil {
		panic(ErrConflictingPrice.Error())
	}
	var b strings.Builder
	b.WriteString("  ")
	if p.Status != Unmarked {
		b.WriteString(p.Status.String())
		b.WriteString(" ")
	}
	b.WriteString(string(p.Account))
	if p.Amount != nil {
		b.WriteString("  ")
		b.WriteString(p.Amount.String())
	}
	switch {
	case p.UnitPrice != nil:
		b.WriteString(" @ ")
		b.WriteString(p.UnitPrice.String())
	case p.TotalPrice != nil:
		b.WriteString(" @@ ")
		b.WriteString(p.TotalPrice.String())
	}
	if p.BalanceAssertion != nil {
		if p.Amount == nil {
			b.WriteString(" ")
		}
		b.WriteString(" = ")
		b.WriteString(p.BalanceAssertion.String())
	}
	writeTags(&b, p.Tags)
	return b.String()
}

// Cost returns the value of the posting in the price currency, if it is priced.
func (p Posting) Cost() (Amount, bool) {
	switch {
	case p.Amount == nil:
		return Amount{}, false
	case p.UnitPrice != nil:
		return p.UnitPrice.Mul(p.Amount.Value), true
	case p.TotalPrice != nil:
		if p.Amount.IsNegative() {
			return p.TotalPrice.Neg(), true
		}
		return *p.TotalPrice, true
	}
	return Amount{}, false
}

func (p Posting) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("status", p.Status)
	w.Append("account", p.Account)
	if p.Amount != nil {
		w.Append("amount", *p.Amount)
	}
	if p.UnitPrice != nil {
		w.Append("unitPrice", *p.UnitPrice)
	}
	if p.TotalPrice != nil {
		w.Append("totalPrice", *p.TotalPrice)
	}
	if p.BalanceAssertion != nil {
		w.Append("balanceAssertion", *p.BalanceAssertion)
	}
	w.Optional("tags", p.Tags)
	return w.MarshalJSON()
}

// writeTags appends the tags as a trailing comment.
func writeTags(b *strings.Builder, tags []Tag) {
	for i, t := range tags {
		if i == 0 {
			b.WriteString("  ; ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
}
