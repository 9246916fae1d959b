package hledger

import (
	"fmt"

	"github.com/etnz/hledger/date"
)

// Price is a declared market price: on Date, one unit of Commodity is worth Amount.
//
//	P 2022-06-23 EUR 1.05 USD
type Price struct {
	Commodity string
	Date      date.Date
	Amount    Amount
}

func (p Price) String() string {
	return fmt.Sprintf("P %s %s %s", p.Date, formatCurrency(p.Commodity), p.Amount)
}

func (p Price) Equal(q Price) bool {
	return p.Commodity == q.Commodity && p.Date == q.Date && p.Amount.Equal(q.Amount)
}

// Convert returns the value of a, expressed in the commodity of p, in the
// currency of p's amount.
func (p Price) Convert(a Amount) (Amount, error) {
	if a.Currency != p.Commodity {
		return Amount{}, fmt.Errorf("cannot convert %s with a price of %s", a, p.Commodity)
	}
	return p.Amount.Mul(a.Value), nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("commodity", p.Commodity)
	w.Append("amount", p.Amount)
	return w.MarshalJSON()
}

func (Price) isValue() {}

// AsPrice extracts a Price from a journal value. It fails with
// ErrExtractionMismatch if v is any other kind of value.
func AsPrice(v Value) (Price, error) {
	switch p := v.(type) {
	case Price:
		return p, nil
	case *Price:
		if p == nil {
			return Price{}, fmt.Errorf("%w: nil price directive", ErrExtractionMismatch)
		}
		return *p, nil
	}
	return Price{}, fmt.Errorf("%w: want a price directive, got %s", ErrExtractionMismatch, kindOf(v))
}
