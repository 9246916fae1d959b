package hledger

import (
	"strings"
	"unicode"

	"github.com/etnz/hledger/date"
)

// This file contains the line grammar of the journal entries built on top of
// the amount and tag scanners:
//
//	price       := 'P' space date space commodity space amount
//	header      := date [status] ['(' code ')'] [description] [';' comment]
//	posting     := indent [status] account ['  ' amount [cost] [assertion]] [';' comment]
//	cost        := '@' amount | '@@' amount
//	assertion   := '=' amount

// scanDate consumes a date token.
func scanDate(c *cursor) (date.Date, error) {
	start := c.pos
	token := c.takeWhile(func(r rune) bool { return isDigit(r) || strings.ContainsRune(date.Separators, r) })
	if token == "" {
		return date.Date{}, errorAt(start, ErrInvalidDate, "expected a date")
	}
	d, err := date.Parse(token)
	if err != nil {
		return date.Date{}, errorAt(start, ErrInvalidDate, err.Error())
	}
	return d, nil
}

// requireSpace consumes at least one horizontal space.
func requireSpace(c *cursor, sentinel error, what string) error {
	if c.skipSpaces() == 0 {
		return errorAt(c.pos, sentinel, "expected a space before "+what)
	}
	return nil
}

// scanPrice consumes a "P date commodity amount" directive.
func scanPrice(c *cursor) (Price, error) {
	if !c.consume("P") {
		return Price{}, errorAt(c.pos, ErrInvalidPrice, "expected 'P'")
	}
	if err := requireSpace(c, ErrInvalidPrice, "the date"); err != nil {
		return Price{}, err
	}
	on, err := scanDate(c)
	if err != nil {
		return Price{}, err
	}
	if err := requireSpace(c, ErrInvalidPrice, "the commodity"); err != nil {
		return Price{}, err
	}
	start := c.pos
	commodity, err := scanCurrency(c)
	if isCut(err) {
		return Price{}, err
	}
	if err != nil {
		return Price{}, errorAt(start, ErrInvalidPrice, "expected a commodity")
	}
	if err := requireSpace(c, ErrInvalidPrice, "the amount"); err != nil {
		return Price{}, err
	}
	amount, err := scanAmount(c)
	if err != nil {
		return Price{}, err
	}
	skipComment(c)
	return Price{Commodity: strings.TrimSpace(commodity), Date: on, Amount: amount}, nil
}

// ParsePrice parses a price directive line, e.g. "P 2022-06-23 EUR 1.05 USD".
func ParsePrice(line string) (Price, error) { return parse(line, scanPrice) }

// skipComment consumes a trailing ';' comment and returns its text.
func skipComment(c *cursor) (string, bool) {
	c.skipSpaces()
	if !c.consume(";") {
		return "", false
	}
	text := c.rest()
	c.pos = len(c.src)
	return text, true
}

// scanPosting consumes an indented posting line.
func scanPosting(c *cursor) (Posting, error) {
	if c.skipSpaces() == 0 {
		return Posting{}, errorAt(c.pos, ErrInvalidPosting, "a posting must be indented")
	}
	p := Posting{Status: scanStatus(c)}
	start := c.pos
	p.Account = scanAccount(c)
	if p.Account == "" || strings.HasPrefix(string(p.Account), ";") {
		return Posting{}, errorAt(start, ErrInvalidPosting, "expected an account")
	}
	c.skipSpaces()

	if !c.eof() && !strings.ContainsRune("@=;", c.peek()) {
		amount, err := scanAmount(c)
		if err != nil {
			return Posting{}, err
		}
		p.Amount = &amount
		c.skipSpaces()
	}

	at := c.pos
	switch {
	case c.consume("@@"):
		c.skipSpaces()
		total, err := scanAmount(c)
		if err != nil {
			return Posting{}, err
		}
		p.TotalPrice = &total
	case c.consume("@"):
		c.skipSpaces()
		unit, err := scanAmount(c)
		if err != nil {
			return Posting{}, err
		}
		p.UnitPrice = &unit
	}
	if p.Amount == nil && (p.UnitPrice != nil || p.TotalPrice != nil) {
		return Posting{}, errorAt(at, ErrInvalidPosting, "a price needs an amount")
	}

	c.skipSpaces()
	if c.consume("=") {
		c.skipSpaces()
		assertion, err := scanAmount(c)
		if err != nil {
			return Posting{}, err
		}
		p.BalanceAssertion = &assertion
	}

	if comment, ok := skipComment(c); ok {
		p.Tags = ExtractTags(comment)
	}
	return p, p.Validate()
}

// ParsePosting parses a posting line, e.g. "  ! expenses:food  100 EUR @ 1.05 USD".
func ParsePosting(line string) (Posting, error) { return parse(line, scanPosting) }

// scanHeader consumes the first line of a transaction.
func scanHeader(c *cursor) (Transaction, error) {
	on, err := scanDate(c)
	if err != nil {
		return Transaction{}, err
	}
	// A secondary date ("2022-06-23=2022-06-25") is accepted and ignored.
	if c.consume("=") {
		if _, err := scanDate(c); err != nil {
			return Transaction{}, err
		}
	}
	t := Transaction{Date: on}
	c.skipSpaces()
	t.Status = scanStatus(c)
	if c.consume("(") {
		t.Code = c.takeWhile(func(r rune) bool { return r != ')' && r != '\n' })
		if !c.consume(")") {
			return Transaction{}, errorAt(c.pos, ErrTrailingInput, "unterminated transaction code")
		}
		c.skipSpaces()
	}
	t.Description = strings.TrimRightFunc(c.takeWhile(func(r rune) bool { return r != ';' }), unicode.IsSpace)
	if comment, ok := skipComment(c); ok {
		t.Tags = ExtractTags(comment)
	}
	return t, nil
}
