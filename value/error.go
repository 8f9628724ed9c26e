package value

import "fmt"

// ErrorKind names the evaluation failure taxonomy.
type ErrorKind string

const (
	// UndefinedIdentifier: a name resolved against neither the scope
	// chain, the constants table, nor the builtin registry
	UndefinedIdentifier ErrorKind = "undefined identifier"
	// InvalidOperation: an operation whose inputs are the right kinds
	// but whose values are unusable (bad substring bounds, negative
	// shift amount)
	InvalidOperation ErrorKind = "invalid operation"
	// TypeError: an operator or builtin applied to operand kinds it does
	// not accept
	TypeError ErrorKind = "type error"
	// InvalidArgumentCount: a builtin or user function called with the
	// wrong number of arguments
	InvalidArgumentCount ErrorKind = "invalid argument count"
	// DivisionByZero: integer division or modulo with a zero divisor
	DivisionByZero ErrorKind = "division by zero"
	// IndexOutOfRange: a list or string index outside the valid range
	IndexOutOfRange ErrorKind = "index out of range"
)

// Error is an evaluation error. It implements both Value, so it can
// propagate through the tree walk like any other result, and Go's error
// interface, so the public API can hand it straight back to the caller.
type Error struct {
	Kind    ErrorKind // the taxonomy bucket
	Message string    // human-readable detail
}

// NewError creates an evaluation error with a formatted message.
func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// GetType returns the type of the Error value
func (e *Error) GetType() ValueType {
	return ErrorType
}

// ToString returns the kind and the message (e.g., "division by zero: 1 / 0")
func (e *Error) ToString() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ToObject returns a detailed representation
func (e *Error) ToObject() string {
	return fmt.Sprintf("<error(%s: %s)>", e.Kind, e.Message)
}

// Clone returns a copy of the error
func (e *Error) Clone() Value {
	return &Error{Kind: e.Kind, Message: e.Message}
}

// Error implements the Go error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("eval error: %s", e.ToString())
}

// IsError reports whether v is a propagating evaluation error.
func IsError(v Value) bool {
	return v != nil && v.GetType() == ErrorType
}
