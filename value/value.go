// Package value defines the runtime value model of the terminus
// evaluator. Every result the evaluator produces is a tagged variant
// implementing the Value interface: integers, floats, booleans, strings,
// dates, lists, and the two function kinds (builtin references and
// user-defined functions). Errors travel through evaluation as values of
// their own kind and are converted to Go errors at the API boundary.
package value

import (
	"fmt"
	"strconv"

	"github.com/mlaass/terminus/parser"
)

// ValueType represents the type of a terminus value as a string constant.
type ValueType string

const (
	// IntegerType represents 64-bit integer values
	IntegerType ValueType = "int"
	// FloatType represents 64-bit floating-point values
	FloatType ValueType = "float"
	// BooleanType represents boolean (true/false) values
	BooleanType ValueType = "bool"
	// StringType represents string values
	StringType ValueType = "string"
	// DateType represents date values: opaque ISO-like strings that
	// compare lexicographically
	DateType ValueType = "date"
	// ListType represents lists of terminus values
	ListType ValueType = "list"
	// FunctionType represents a reference to a builtin function
	FunctionType ValueType = "func"
	// FunctionDefType represents a user-defined function: a parsed body
	// tree plus parameter names
	FunctionDefType ValueType = "funcdef"
	// ErrorType represents evaluation errors while they propagate
	ErrorType ValueType = "error"
)

// Value is the interface all terminus runtime values implement.
type Value interface {
	// GetType returns the ValueType of the value, used for dispatch
	GetType() ValueType
	// ToString returns the plain rendering of the value, the form the
	// CLI prints and str.concat splices
	ToString() string
	// ToObject returns a detailed representation including type
	// information, used for debugging and inspection
	ToObject() string
	// Clone returns a deep copy; list elements are cloned recursively
	Clone() Value
}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64 // The underlying integer value
}

// GetType returns the type of the Integer value
func (i *Integer) GetType() ValueType {
	return IntegerType
}

// ToString returns the decimal rendering (e.g., "42")
func (i *Integer) ToString() string {
	return strconv.FormatInt(i.Value, 10)
}

// ToObject returns a detailed representation (e.g., "<int(42)>")
func (i *Integer) ToObject() string {
	return fmt.Sprintf("<int(%d)>", i.Value)
}

// Clone returns a copy of the integer
func (i *Integer) Clone() Value {
	return &Integer{Value: i.Value}
}

// Float represents a 64-bit floating-point value.
type Float struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Float value
func (f *Float) GetType() ValueType {
	return FloatType
}

// ToString returns the shortest rendering that round-trips (e.g., "3.5")
func (f *Float) ToString() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// ToObject returns a detailed representation (e.g., "<float(3.5)>")
func (f *Float) ToObject() string {
	return fmt.Sprintf("<float(%s)>", f.ToString())
}

// Clone returns a copy of the float
func (f *Float) Clone() Value {
	return &Float{Value: f.Value}
}

// Boolean represents a boolean value.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean value
func (b *Boolean) GetType() ValueType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return strconv.FormatBool(b.Value)
}

// ToObject returns a detailed representation (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Clone returns a copy of the boolean
func (b *Boolean) Clone() Value {
	return &Boolean{Value: b.Value}
}

// String represents a UTF-8 string value.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String value
func (s *String) GetType() ValueType {
	return StringType
}

// ToString returns the string itself
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation (e.g., "<string(hello)>")
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Clone returns a copy of the string
func (s *String) Clone() Value {
	return &String{Value: s.Value}
}

// Date represents a date value. The body is the text between the quotes
// of a d'...' literal, held verbatim; dates have no arithmetic and
// compare by lexicographic byte order.
type Date struct {
	Value string // The ISO-like date body
}

// GetType returns the type of the Date value
func (d *Date) GetType() ValueType {
	return DateType
}

// ToString returns the date body (e.g., "2023-01-01")
func (d *Date) ToString() string {
	return d.Value
}

// ToObject returns a detailed representation (e.g., "<date(2023-01-01)>")
func (d *Date) ToObject() string {
	return fmt.Sprintf("<date(%s)>", d.Value)
}

// Clone returns a copy of the date
func (d *Date) Clone() Value {
	return &Date{Value: d.Value}
}

// List represents a sequence of terminus values.
type List struct {
	Elements []Value // The values in the list, in order
}

// GetType returns the type of the List value
func (l *List) GetType() ValueType {
	return ListType
}

// ToString returns the list as "[elem1, elem2, ...]"
func (l *List) ToString() string {
	result := "["
	for i, elem := range l.Elements {
		if i > 0 {
			result += ", "
		}
		result += elem.ToString()
	}
	result += "]"
	return result
}

// ToObject returns a detailed representation as "<list([...])>"
func (l *List) ToObject() string {
	result := "<list(["
	for i, elem := range l.Elements {
		if i > 0 {
			result += ", "
		}
		result += elem.ToObject()
	}
	result += "])>"
	return result
}

// Clone returns a deep copy of the list; every element is cloned
func (l *List) Clone() Value {
	elements := make([]Value, len(l.Elements))
	for i, elem := range l.Elements {
		elements[i] = elem.Clone()
	}
	return &List{Elements: elements}
}

// Function represents a reference to a builtin function. The reference
// is by name; the evaluator resolves it against its registry at call
// time, so function values stay plain data.
type Function struct {
	Name string // The registry name of the builtin (e.g., "abs")
}

// GetType returns the type of the Function value
func (f *Function) GetType() ValueType {
	return FunctionType
}

// ToString returns the function rendering (e.g., "<builtin abs>")
func (f *Function) ToString() string {
	return fmt.Sprintf("<builtin %s>", f.Name)
}

// ToObject returns a detailed representation
func (f *Function) ToObject() string {
	return fmt.Sprintf("<func(%s)>", f.Name)
}

// Clone returns a copy of the function reference
func (f *Function) Clone() Value {
	return &Function{Name: f.Name}
}

// FunctionDef represents a user-defined function installed by def(). It
// holds the parsed body tree and the parameter names; calling it binds
// the parameters in a child scope and evaluates the body.
type FunctionDef struct {
	Name   string       // The name the function was installed under
	Params []string     // Parameter names, in declaration order
	Body   *parser.Node // The parsed body tree
}

// GetType returns the type of the FunctionDef value
func (f *FunctionDef) GetType() ValueType {
	return FunctionDefType
}

// ToString returns the function rendering (e.g., "<function twice>")
func (f *FunctionDef) ToString() string {
	return fmt.Sprintf("<function %s>", f.Name)
}

// ToObject returns a detailed representation
func (f *FunctionDef) ToObject() string {
	return fmt.Sprintf("<funcdef(%s/%d)>", f.Name, len(f.Params))
}

// Clone returns a copy of the function definition. The body tree is
// immutable after parsing and is shared, not copied.
func (f *FunctionDef) Clone() Value {
	params := make([]string, len(f.Params))
	copy(params, f.Params)
	return &FunctionDef{Name: f.Name, Params: params, Body: f.Body}
}
