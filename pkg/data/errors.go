package data

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrHeader     = errors.New("header needs at least one feature and a target column")
	ErrFieldCount = errors.New("row field count differs from header")
	ErrParse      = errors.New("field is not a number")
	ErrShape      = errors.New("shape mismatch")
	ErrNoRows     = errors.New("table has no data rows")
)

// ParseError reports a data field that could not be read as a number.
// Line is the 1-based line in the input file, Column the 0-based field index.
type ParseError struct {
	Line   int
	Column int
	Name   string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d (%s): cannot parse %q: %v", e.Line, e.Column, e.Name, e.Value, e.Err)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
