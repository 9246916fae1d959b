package hledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the amount grammar:
//
//	amount      := suffix_form | prefix_form
//	suffix_form := sign? number space? currency
//	prefix_form := sign? currency space? sign? number
//	number      := digit+ (' ' digit+)* ([.,] digit+)?
//	currency    := quoted_string | bare_run_until(digit | '-' | space | newline)
//	sign        := '+' | '-'
//
// The two forms are tried in that order and the first one that matches wins.

// maxCoefficient and maxScale bound the decimals we keep to what a 96-bit
// fixed-point decimal can hold.
var maxCoefficient = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))

const maxScale = 28

// scanMoneyAmount consumes digit groups separated by single spaces, then an
// optional '.' or ',' followed by the fractional digits.
func scanMoneyAmount(c *cursor) (decimal.Decimal, error) {
	start := c.pos
	digits := c.takeWhile(isDigit)
	if digits == "" {
		return decimal.Decimal{}, errorAt(start, ErrInvalidAmount, "expected a digit")
	}

	var num strings.Builder
	num.WriteString(digits)
	// A grouping space or a decimal separator only belongs to the number when
	// a digit follows it.
	for followedByDigit(c.rest(), " ") {
		c.pos++
		num.WriteString(c.takeWhile(isDigit))
	}
	if followedByDigit(c.rest(), ".") || followedByDigit(c.rest(), ",") {
		c.pos++
		num.WriteByte('.')
		num.WriteString(c.takeWhile(isDigit))
	}

	value, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Decimal{}, cutAt(start, ErrInvalidAmount, err.Error())
	}
	value, err = fitCapacity(value)
	if err != nil {
		return decimal.Decimal{}, cutAt(start, ErrInvalidAmount, err.Error())
	}
	return value, nil
}

// followedByDigit reports whether s starts with sep immediately followed by a digit.
func followedByDigit(s, sep string) bool {
	return strings.HasPrefix(s, sep) && len(s) > len(sep) && isDigit(rune(s[len(sep)]))
}

// fitCapacity rounds v to at most maxScale fractional digits, then drops
// fractional digits until the coefficient fits. Only an integer part too
// large for the coefficient is an error.
func fitCapacity(v decimal.Decimal) (decimal.Decimal, error) {
	if -v.Exponent() > maxScale {
		v = v.Round(maxScale)
	}
	for v.Exponent() < 0 && v.Coefficient().CmpAbs(maxCoefficient) > 0 {
		v = v.Round(-v.Exponent() - 1)
	}
	if v.Coefficient().CmpAbs(maxCoefficient) > 0 {
		return v, fmt.Errorf("number %s overflows the decimal capacity", v.String())
	}
	return v, nil
}

// scanSign consumes at most one '+' or '-'. It never fails.
func scanSign(c *cursor) AmountSign {
	switch {
	case c.consume("-"):
		return SignMinus
	case c.consume("+"):
		return SignPlus
	}
	return SignNone
}

// scanCurrency consumes a quoted or a bare currency, in that order.
// The label is returned untrimmed.
func scanCurrency(c *cursor) (string, error) {
	return alt(c, scanQuotedCurrency, scanBareCurrency)
}

// scanQuotedCurrency consumes a double quoted label. An opening quote without
// its closing quote on the same line aborts the parse.
func scanQuotedCurrency(c *cursor) (string, error) {
	start := c.pos
	if !c.consume(`"`) {
		return "", errorAt(start, ErrUnmatchedAlternative, "expected '\"'")
	}
	inner := c.takeWhile(func(r rune) bool { return r != '"' && r != '\n' })
	if !c.consume(`"`) {
		return "", cutAt(start, ErrUnterminatedQuote, "")
	}
	if strings.TrimSpace(inner) == "" {
		return "", cutAt(start, ErrInvalidAmount, "empty currency")
	}
	return inner, nil
}

// scanBareCurrency consumes everything up to a digit, a minus sign or a space.
func scanBareCurrency(c *cursor) (string, error) {
	start := c.pos
	cur := c.takeWhile(func(r rune) bool { return !isCurrencyTerminator(r) })
	if cur == "" {
		return "", errorAt(start, ErrUnmatchedAlternative, "expected a currency")
	}
	return cur, nil
}

// scanSuffixAmount consumes "[sign] number [space] currency".
func scanSuffixAmount(c *cursor) (Amount, error) {
	sign := scanSign(c)
	c.skipSpaces()
	value, err := scanMoneyAmount(c)
	if err != nil {
		return Amount{}, err
	}
	c.skipSpaces()
	cur, err := scanCurrency(c)
	if err != nil {
		return Amount{}, err
	}
	return sign.amount(strings.TrimSpace(cur), value), nil
}

// scanPrefixAmount consumes "[sign] currency [space] [sign] number".
// The second sign is only looked for when none preceded the currency.
func scanPrefixAmount(c *cursor) (Amount, error) {
	sign := scanSign(c)
	c.skipSpaces()
	cur, err := scanCurrency(c)
	if err != nil {
		return Amount{}, err
	}
	c.skipSpaces()
	if sign == SignNone {
		sign = scanSign(c)
		c.skipSpaces()
	}
	value, err := scanMoneyAmount(c)
	if err != nil {
		return Amount{}, err
	}
	return sign.amount(strings.TrimSpace(cur), value), nil
}

// scanAmount tries the suffix form first, then the prefix form.
func scanAmount(c *cursor) (Amount, error) {
	return alt(c, scanSuffixAmount, scanPrefixAmount)
}

// scan runs f at the start of input and returns the unconsumed rest.
// On failure rest is the whole input.
func scan[T any](input string, f func(*cursor) (T, error)) (T, string, error) {
	c := newCursor(input)
	v, err := f(c)
	if err != nil {
		var zero T
		return zero, input, err
	}
	return v, c.rest(), nil
}

// parse runs f on input and requires that only horizontal spaces remain.
func parse[T any](input string, f func(*cursor) (T, error)) (T, error) {
	c := newCursor(input)
	v, err := f(c)
	if err == nil {
		err = c.finish()
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ScanAmount consumes an amount at the start of input, in either the suffix
// ("-100 EUR") or the prefix ("EUR -100") form, and returns the rest of the input.
func ScanAmount(input string) (Amount, string, error) { return scan(input, scanAmount) }

// ParseAmount parses input as a single amount.
func ParseAmount(input string) (Amount, error) { return parse(input, scanAmount) }

// ScanMoneyAmount consumes an unsigned number like "1 000,50" and returns the rest of the input.
func ScanMoneyAmount(input string) (decimal.Decimal, string, error) {
	return scan(input, scanMoneyAmount)
}

// ParseMoneyAmount parses input as an unsigned number. Digits may be grouped
// by single spaces and the decimal separator is either '.' or ','.
func ParseMoneyAmount(input string) (decimal.Decimal, error) { return parse(input, scanMoneyAmount) }

// ScanCurrency consumes a quoted or bare currency label and returns it
// untrimmed, with the rest of the input.
func ScanCurrency(input string) (string, string, error) { return scan(input, scanCurrency) }

// ScanSign consumes an optional sign and returns the rest of the input.
func ScanSign(input string) (AmountSign, string) {
	c := newCursor(input)
	s := scanSign(c)
	return s, c.rest()
}
