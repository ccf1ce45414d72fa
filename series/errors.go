package series

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by ParseError.
	ErrParse = errors.New("series: non-numeric token")
	// ErrShape is wrapped by ShapeError.
	ErrShape = errors.New("series: malformed table shape")
)

// ParseError reports a token that is not a floating point number.
// Line and Column are 1-based; Column counts tokens, not bytes.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %d: cannot parse %q: %v", name(e.Path), e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// ShapeError reports a row whose width differs from the first row, or an
// input without rows (Line == 0).
type ShapeError struct {
	Path string
	Line int
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: no data rows", name(e.Path))
	}
	return fmt.Sprintf("%s:%d: row has %d columns, want %d", name(e.Path), e.Line, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func name(path string) string {
	if path == "" {
		return "<input>"
	}
	return path
}
