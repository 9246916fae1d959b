package hledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/hledger/date"
)

// Value is one top level entry of a journal: a Transaction, a Price
// directive, an Include directive or a Comment.
type Value interface {
	isValue()
}

// Transaction is a dated entry with its postings.
type Transaction struct {
	Date        date.Date
	Status      Status
	Code        string
	Description string
	Tags        []Tag
	Postings    []Posting
}

func (Transaction) isValue() {}

// String renders the transaction header and its postings, one per line,
// without a trailing newline.
func (t Transaction) String() string {
	var b strings.Builder
	b.WriteString(t.Date.String())
	if t.Status != Unmarked {
		b.WriteString(" ")
		b.WriteString(t.Status.String())
	}
	if t.Code != "" {
		b.WriteString(" (")
		b.WriteString(t.Code)
		b.WriteString(")")
	}
	if t.Description != "" {
		b.WriteString(" ")
		b.WriteString(t.Description)
	}
	writeTags(&b, t.Tags)
	for _, p := range t.Postings {
		b.WriteString("\n")
		b.WriteString(p.String())
	}
	return b.String()
}

// Validate checks every posting, and that at most one posting has no amount.
func (t Transaction) Validate() error {
	missing := 0
	for i, p := range t.Postings {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("posting %d: %w", i+1, err)
		}
		if p.Amount == nil {
			missing++
		}
	}
	if missing > 1 {
		return fmt.Errorf("%w: %d postings without an amount, at most one can be inferred", ErrInvalidPosting, missing)
	}
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("status", t.Status)
	w.Optional("code", t.Code)
	w.Optional("description", t.Description)
	w.Optional("tags", t.Tags)
	w.Append("postings", t.Postings)
	return w.MarshalJSON()
}

// AsTransaction extracts a Transaction from a journal value.
func AsTransaction(v Value) (Transaction, error) {
	if t, ok := v.(Transaction); ok {
		return t, nil
	}
	return Transaction{}, fmt.Errorf("%w: want a transaction, got %s", ErrExtractionMismatch, kindOf(v))
}

// Include is an "include <path>" directive. The path is kept as written.
type Include struct {
	Path string
}

func (Include) isValue()         {}
func (i Include) String() string { return "include " + i.Path }

// Comment is a top level comment line, Text includes the comment mark.
type Comment struct {
	Text string
}

func (Comment) isValue()         {}
func (c Comment) String() string { return c.Text }

// kindOf names the kind of a journal value for error messages.
func kindOf(v Value) string {
	switch v.(type) {
	case Price, *Price:
		return "price directive"
	case Transaction:
		return "transaction"
	case Include:
		return "include directive"
	case Comment:
		return "comment"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Journal holds the entries of a journal file, in file order.
type Journal struct {
	values []Value
}

// NewJournal returns an empty journal.
func NewJournal() *Journal { return &Journal{} }

// Append adds values at the end of the journal.
func (j *Journal) Append(values ...Value) { j.values = append(j.values, values...) }

// Values returns all the entries in file order.
func (j *Journal) Values() []Value { return j.values }

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.values) }

// Prices returns all price directives, sorted by date. The sort is stable so
// prices declared the same day keep their file order.
func (j *Journal) Prices() []Price {
	var prices []Price
	for _, v := range j.values {
		if p, err := AsPrice(v); err == nil {
			prices = append(prices, p)
		}
	}
	sort.SliceStable(prices, func(i, k int) bool { return prices[i].Date.Before(prices[k].Date) })
	return prices
}

// Transactions returns all transactions in file order.
func (j *Journal) Transactions() []Transaction {
	var txs []Transaction
	for _, v := range j.values {
		if t, err := AsTransaction(v); err == nil {
			txs = append(txs, t)
		}
	}
	return txs
}

// Tags returns the distinct tag names used in transactions and postings, sorted.
func (j *Journal) Tags() []string {
	seen := make(map[string]struct{})
	for _, t := range j.Transactions() {
		for _, tag := range t.Tags {
			seen[tag.Name] = struct{}{}
		}
		for _, p := range t.Postings {
			for _, tag := range p.Tags {
				seen[tag.Name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
