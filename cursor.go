package hledger

import (
	"strings"
	"unicode/utf8"
)

// cursor is a read position in a text slice. Scanners consume a prefix of
// what remains and leave the position right after it.
type cursor struct {
	src string
	pos int
}

func newCursor(s string) *cursor { return &cursor{src: s} }

// rest returns the unconsumed input.
func (c *cursor) rest() string { return c.src[c.pos:] }

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// peek returns the next rune without consuming it, or utf8.RuneError at the end.
func (c *cursor) peek() rune {
	if c.eof() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

// takeWhile consumes runes as long as accept returns true and returns them.
func (c *cursor) takeWhile(accept func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.src) {
		r, size := utf8.DecodeRuneInString(c.src[c.pos:])
		if !accept(r) {
			break
		}
		c.pos += size
	}
	return c.src[start:c.pos]
}

// consume advances past prefix if the input starts with it.
func (c *cursor) consume(prefix string) bool {
	if !strings.HasPrefix(c.rest(), prefix) {
		return false
	}
	c.pos += len(prefix)
	return true
}

// skipSpaces consumes horizontal whitespace. It never crosses a newline.
func (c *cursor) skipSpaces() int {
	return len(c.takeWhile(isHorizontalSpace))
}

func isHorizontalSpace(r rune) bool { return r == ' ' || r == '\t' }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// alt runs each alternative from the same position and returns the first
// success. A backtracking failure rewinds the cursor before the next
// alternative; a cut failure is returned immediately.
func alt[T any](c *cursor, alternatives ...func(*cursor) (T, error)) (T, error) {
	start := c.pos
	var zero T
	for _, try := range alternatives {
		v, err := try(c)
		if err == nil {
			return v, nil
		}
		if isCut(err) {
			return zero, err
		}
		c.pos = start
	}
	return zero, errorAt(start, ErrUnmatchedAlternative, "")
}

// finish checks that only horizontal whitespace remains.
func (c *cursor) finish() error {
	c.skipSpaces()
	if !c.eof() {
		return errorAt(c.pos, ErrTrailingInput, quoteShort(c.rest()))
	}
	return nil
}

// quoteShort quotes s for error messages, truncating long inputs.
func quoteShort(s string) string {
	const limit = 20
	if len(s) > limit {
		s = s[:limit] + "…"
	}
	return `"` + s + `"`
}
