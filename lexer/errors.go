package lexer

import "fmt"

// ErrorKind names the ways a scan can fail.
type ErrorKind string

const (
	// UnterminatedString is returned when a string or date literal is
	// opened but its closing quote never arrives.
	UnterminatedString ErrorKind = "unterminated string"
	// BadNumber is returned when a numeric literal has a sign or dot but
	// no digits to attach them to.
	BadNumber ErrorKind = "malformed number"
)

// Error is a lexical error with the source position where the offending
// literal started.
type Error struct {
	Kind   ErrorKind // what went wrong
	Line   int       // line of the offending literal (1-indexed)
	Column int       // column of the offending literal (1-indexed)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] lex error: %s", e.Line, e.Column, e.Kind)
}

// newError creates a lexical Error at the given position.
func newError(kind ErrorKind, line, column int) *Error {
	return &Error{Kind: kind, Line: line, Column: column}
}
