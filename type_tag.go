package hledger

import (
	"unicode"
)

// Tag is a "name:value" annotation found in transaction and posting comments.
// A nil Value means the tag has no value ("name:").
type Tag struct {
	Name  string
	Value *string
}

// NewTag returns a Tag with a value.
func NewTag(name, value string) Tag { return Tag{Name: name, Value: &value} }

// HasValue reports whether the tag carries a value.
func (t Tag) HasValue() bool { return t.Value != nil }

func (t Tag) Equal(u Tag) bool {
	if t.Name != u.Name || t.HasValue() != u.HasValue() {
		return false
	}
	return !t.HasValue() || *t.Value == *u.Value
}

func (t Tag) String() string {
	if t.Value == nil {
		return t.Name + ":"
	}
	return t.Name + ":" + *t.Value
}

// MarshalJSON implements json.Marshaler, the value is omitted when absent.
func (t Tag) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", t.Name)
	if t.Value != nil {
		w.Append("value", *t.Value)
	}
	return w.MarshalJSON()
}

func isAlphanumeric(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func isTagNameRune(r rune) bool { return isAlphanumeric(r) || r == '-' }

// scanTag consumes "name:" and an optional value glued to the colon.
func scanTag(c *cursor) (Tag, error) {
	name := c.takeWhile(isTagNameRune)
	if name == "" {
		return Tag{}, errorAt(c.pos, ErrInvalidTag, "expected a tag name")
	}
	if !c.consume(":") {
		return Tag{}, errorAt(c.pos, ErrInvalidTag, "expected ':'")
	}
	tag := Tag{Name: name}
	if value := c.takeWhile(isAlphanumeric); value != "" {
		tag.Value = &value
	}
	return tag, nil
}

// ScanTag consumes a tag at the start of input and returns the rest of the input.
func ScanTag(input string) (Tag, string, error) { return scan(input, scanTag) }

// ParseTag parses input as a single tag, e.g. "cash:" or "cash:atm".
func ParseTag(input string) (Tag, error) { return parse(input, scanTag) }

// ExtractTags extracts every tag found in a comment. Words are separated by
// spaces and commas; words that are not tags are ignored.
func ExtractTags(comment string) []Tag {
	var tags []Tag
	c := newCursor(comment)
	for !c.eof() {
		c.takeWhile(func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
		if c.eof() {
			break
		}
		start := c.pos
		if tag, err := scanTag(c); err == nil && atWordEnd(c) {
			tags = append(tags, tag)
			continue
		}
		c.pos = start
		c.takeWhile(func(r rune) bool { return !unicode.IsSpace(r) && r != ',' })
	}
	return tags
}

// atWordEnd reports whether the cursor stands at the end of a comment word.
func atWordEnd(c *cursor) bool {
	r := c.peek()
	return c.eof() || unicode.IsSpace(r) || r == ','
}
