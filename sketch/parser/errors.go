package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingContainer reports a declaration that has no open container
	// of the required kind to attach to.
	ErrMissingContainer = errors.New("no open container")

	// ErrMalformedParameterList reports a method line whose parentheses do
	// not enclose a parameter list.
	ErrMalformedParameterList = errors.New("malformed parameter list")
)

// LineError carries the line number and content of a structural parse error.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

func lineErr(line int, text string, err error) error {
	return &LineError{Line: line, Text: text, Err: err}
}
