package hledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DecodeJournal reads a journal from r, one entry per line or block of lines.
// name is for error messages only.
//
// Supported entries are transactions with their postings, price directives
// ("P"), include directives (kept, not followed) and top level comments.
// Comment lines inside a transaction only contribute their tags, to the last
// posting or to the transaction when no posting was read yet.
func DecodeJournal(name string, r io.Reader) (*Journal, error) {
	j := NewJournal()
	scanner := bufio.NewScanner(r)

	var current *Transaction
	var currentLine int
	flush := func() error {
		if current == nil {
			return nil
		}
		if err := current.Validate(); err != nil {
			return fmt.Errorf("%s:%d: %w", name, currentLine, err)
		}
		j.Append(*current)
		current = nil
		return nil
	}

	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case line[0] == ' ' || line[0] == '\t':
			if current == nil {
				return nil, fmt.Errorf("%s:%d: %w: indented line outside of a transaction", name, n, ErrInvalidPosting)
			}
			if strings.HasPrefix(trimmed, ";") {
				tags := ExtractTags(trimmed[1:])
				if last := len(current.Postings) - 1; last >= 0 {
					current.Postings[last].Tags = append(current.Postings[last].Tags, tags...)
				} else {
					current.Tags = append(current.Tags, tags...)
				}
				continue
			}
			p, err := ParsePosting(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, n, err)
			}
			current.Postings = append(current.Postings, p)

		case strings.ContainsRune(";#*%", rune(line[0])):
			if err := flush(); err != nil {
				return nil, err
			}
			j.Append(Comment{Text: line})

		case strings.HasPrefix(line, "P ") || strings.HasPrefix(line, "P\t"):
			if err := flush(); err != nil {
				return nil, err
			}
			p, err := ParsePrice(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, n, err)
			}
			j.Append(p)

		case strings.HasPrefix(line, "include "):
			if err := flush(); err != nil {
				return nil, err
			}
			j.Append(Include{Path: strings.TrimSpace(strings.TrimPrefix(line, "include "))})

		case isDigit(rune(line[0])):
			if err := flush(); err != nil {
				return nil, err
			}
			t, err := parse(line, scanHeader)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, n, err)
			}
			current, currentLine = &t, n

		default:
			return nil, fmt.Errorf("%s:%d: unsupported directive %s", name, n, quoteShort(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return j, nil
}

// EncodeJournal writes the journal in its canonical form. Transactions are
// separated from the surrounding entries by a blank line.
func EncodeJournal(w io.Writer, j *Journal) error {
	for i, v := range j.values {
		if i > 0 {
			_, prevIsTx := j.values[i-1].(Transaction)
			_, isTx := v.(Transaction)
			if prevIsTx || isTx {
				if _, err := fmt.Fprintln(w); err != nil {
					return fmt.Errorf("failed to write journal: %w", err)
				}
			}
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("failed to write journal entry: %w", err)
		}
	}
	return nil
}
