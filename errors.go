package hledger

import (
	"errors"
	"fmt"
)

var (
	// Amount errors
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrUnterminatedQuote    = errors.New("unterminated quote")
	ErrUnmatchedAlternative = errors.New("no alternative matched")
	ErrTrailingInput        = errors.New("unexpected trailing input")

	// Tag errors
	ErrInvalidTag = errors.New("invalid tag")

	// Record errors
	ErrExtractionMismatch = errors.New("value is not of the requested kind")
	ErrConflictingPrice   = errors.New("posting has both a unit price and a total price")
	ErrInvalidPosting     = errors.New("invalid posting")
	ErrInvalidPrice       = errors.New("invalid price directive")
	ErrInvalidDate        = errors.New("invalid date")
)

// ParseError reports a failure at a byte offset of the parsed input.
type ParseError struct {
	Offset int    // byte offset in the input where the failure occurred
	Err    error  // one of the package sentinel errors
	Msg    string // optional detail, like the decimal conversion message

	cut bool // when true, no other alternative is tried
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d: %v: %s", e.Offset, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// errorAt creates a ParseError that lets an enclosing alternative backtrack.
func errorAt(offset int, err error, msg string) *ParseError {
	return &ParseError{Offset: offset, Err: err, Msg: msg}
}

// cutAt creates a ParseError that aborts the whole parse.
func cutAt(offset int, err error, msg string) *ParseError {
	return &ParseError{Offset: offset, Err: err, Msg: msg, cut: true}
}

// isCut reports whether err must stop the ordered choice.
func isCut(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.cut
}
