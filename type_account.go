package hledger

import "strings"

// AccountSeparator separates the components of an account name.
const AccountSeparator = ":"

// Account is a colon separated account name like "expenses:food".
type Account string

// Parts returns the components of the account name.
func (a Account) Parts() []string { return strings.Split(string(a), AccountSeparator) }

// Parent returns the account one level up, or "" for a top level account.
func (a Account) Parent() Account {
	i := strings.LastIndex(string(a), AccountSeparator)
	if i < 0 {
		return ""
	}
	return a[:i]
}

// IsUnder reports whether a is parent, or a descendant of it.
func (a Account) IsUnder(parent Account) bool {
	return a == parent || strings.HasPrefix(string(a), string(parent)+AccountSeparator)
}

// scanAccount consumes an account name. Account names may contain single
// spaces; two spaces, a tab, or the end of the line terminate them.
func scanAccount(c *cursor) Account {
	start := c.pos
	for !c.eof() {
		rest := c.rest()
		if rest[0] == '\t' || rest[0] == '\n' || strings.HasPrefix(rest, "  ") {
			break
		}
		c.pos++
	}
	return Account(strings.TrimRight(c.src[start:c.pos], " "))
}
