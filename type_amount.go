package hledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value: an exact decimal and the currency or commodity
// it is expressed in. The sign of a zero value is kept, so "-0 EUR" renders
// back as written.
type Amount struct {
	Currency string
	Value    decimal.Decimal

	// negZero is the minus sign of a zero Value, decimal.Decimal has none.
	negZero bool
}

// A is a convenient factory for Amount, mainly for tests and literals.
func A[T int | int64 | uint64 | decimal.Decimal | string](value T, currency string) Amount {
	return Amount{Currency: currency, Value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal. Strings must be
// valid decimal literals, it panics otherwise.
func newDecimal[T int | int64 | uint64 | decimal.Decimal | string](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint64:
		return decimal.NewFromUint64(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}

// AmountSign is the outcome of the sign scanner. It is never stored.
type AmountSign int

const (
	SignNone AmountSign = iota
	SignPlus
	SignMinus
)

func (s AmountSign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return ""
	}
}

// amount returns the amount of magnitude v in cur, signed by s. SignNone and
// SignPlus leave v unchanged. SignMinus is kept even when v is zero.
func (s AmountSign) amount(cur string, v decimal.Decimal) Amount {
	if s != SignMinus {
		return Amount{Currency: cur, Value: v}
	}
	return Amount{Currency: cur, Value: v.Abs().Neg(), negZero: v.IsZero()}
}

// Equal compares currencies and values numerically: "-0 EUR" equals "0 EUR".
func (a Amount) Equal(b Amount) bool { return a.Currency == b.Currency && a.Value.Equal(b.Value) }
func (a Amount) IsZero() bool        { return a.Value.IsZero() }

// IsNegative reports whether the amount carries a minus sign, "-0 EUR" included.
func (a Amount) IsNegative() bool { return a.negZero || a.Value.IsNegative() }

func (a Amount) Neg() Amount {
	return Amount{Currency: a.Currency, Value: a.Value.Neg(), negZero: a.Value.IsZero() && !a.negZero}
}

func (a Amount) Mul(q decimal.Decimal) Amount { return Amount{Currency: a.Currency, Value: a.Value.Mul(q)} }

// String renders the amount in the suffix form: value, a space, the currency.
// Currencies that would not scan back as a bare token are quoted.
func (a Amount) String() string {
	return a.number() + " " + formatCurrency(a.Currency)
}

// number prints the value, with the minus sign of a negative zero.
func (a Amount) number() string {
	if a.negZero {
		return "-" + formatValue(a.Value)
	}
	return formatValue(a.Value)
}

// formatValue prints v with all the digits it was parsed with.
func formatValue(v decimal.Decimal) string {
	if exp := v.Exponent(); exp < 0 {
		return v.StringFixed(-exp)
	}
	return v.String()
}

// formatCurrency quotes the currency when a bare scan would stop early.
func formatCurrency(cur string) string {
	if cur == "" || strings.ContainsRune(cur, '"') {
		return cur
	}
	for _, r := range cur {
		if isCurrencyTerminator(r) {
			return `"` + cur + `"`
		}
	}
	return cur
}

// Display returns a human-friendly representation, using the ISO 4217
// formatting rules when the currency is known (e.g. "$1,234.50"). Unknown
// commodities fall back to String.
func (a Amount) Display() string {
	cur := money.GetCurrency(strings.ToUpper(a.Currency))
	if cur == nil {
		return a.String()
	}
	minor := a.Value.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(decimal.NewFromInt(1 << 62)) {
		return a.String()
	}
	return cur.Formatter().Format(minor.IntPart())
}

// MarshalJSON implements json.Marshaler with a stable key order.
func (a Amount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", a.Currency)
	w.Append("value", json.Number(a.number()))
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var j struct {
		Currency string      `json:"currency"`
		Value    json.Number `json:"value"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	value, err := decimal.NewFromString(j.Value.String())
	if err != nil {
		return fmt.Errorf("invalid amount value %q: %w", j.Value, err)
	}
	a.Currency, a.Value = j.Currency, value
	a.negZero = value.IsZero() && strings.HasPrefix(j.Value.String(), "-")
	return nil
}

// isCurrencyTerminator reports whether r ends a bare currency token.
func isCurrencyTerminator(r rune) bool {
	return isDigit(r) || r == '-' || unicode.IsSpace(r)
}
