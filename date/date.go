// Package date provides a calendar date with day granularity, as written in
// journal files.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Separators are the characters accepted between year, month and day.
const Separators = "-/."

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient: single-digit month and
// day are accepted, and the separator can be any of '-', '/' or '.' as long
// as it is the same twice ("2025-7-1", "2025/07/01").
func Parse(str string) (Date, error) {
	i := strings.IndexAny(str, Separators)
	if i < 0 {
		return Date{}, fmt.Errorf("invalid date %q want format %q", str, readDateFormat)
	}
	sep := str[i : i+1]
	if strings.Count(str, sep) != 2 || strings.ContainsAny(strings.ReplaceAll(str, sep, ""), Separators) {
		return Date{}, fmt.Errorf("invalid date %q: mixed or missing separators", str)
	}
	on, err := time.Parse(readDateFormat, strings.ReplaceAll(str, sep, "-"))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
