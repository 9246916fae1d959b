package hledger

import "fmt"

// Status is the clearing mark of a transaction or a posting.
type Status int

const (
	// Unmarked is the default status, it has no textual mark.
	Unmarked Status = iota
	// Pending is marked with '!'.
	Pending
	// Cleared is marked with '*'.
	Cleared
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "!"
	case Cleared:
		return "*"
	default:
		return ""
	}
}

// ParseStatus parses a status mark. The empty string is Unmarked.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "":
		return Unmarked, nil
	case "!":
		return Pending, nil
	case "*":
		return Cleared, nil
	default:
		return Unmarked, fmt.Errorf("unknown status mark: %q", s)
	}
}

// scanStatus consumes an optional status mark followed by horizontal spaces.
func scanStatus(c *cursor) Status {
	switch {
	case c.consume("!"):
		c.skipSpaces()
		return Pending
	case c.consume("*"):
		c.skipSpaces()
		return Cleared
	}
	return Unmarked
}

func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case Pending:
		return []byte(`"pending"`), nil
	case Cleared:
		return []byte(`"cleared"`), nil
	default:
		return []byte(`"unmarked"`), nil
	}
}
