package std

import "github.com/mlaass/terminus/value"

var convertMethods = []*Builtin{
	{Name: "int", Callback: toInt},     // Converts a numeric to integer, truncating toward zero
	{Name: "float", Callback: toFloat}, // Converts a numeric to float
	{Name: "bool", Callback: toBool},   // Converts a numeric to boolean (x != 0)
}

// init registers the conversion builtins.
func init() {
	Builtins = append(Builtins, convertMethods...)
}

// toInt converts a numeric value to an integer.
//
// Syntax: int(x)
//
// A float is truncated toward zero; an integer passes through.
//
// Example:
//
//	int(3.9);  // Returns 3
//	int(-3.9); // Returns -3
func toInt(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("int", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *value.Integer:
		return &value.Integer{Value: v.Value}
	case *value.Float:
		return &value.Integer{Value: int64(v.Value)}
	}
	return createError(value.TypeError, "int expects a numeric argument, got '%s'", args[0].GetType())
}

// toFloat converts a numeric value to a float.
//
// Syntax: float(x)
func toFloat(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("float", args, 1); err != nil {
		return err
	}
	if !isNumeric(args[0]) {
		return createError(value.TypeError, "float expects a numeric argument, got '%s'", args[0].GetType())
	}
	return &value.Float{Value: floatOf(args[0])}
}

// toBool converts a numeric value to a boolean.
//
// Syntax: bool(x)
//
// Returns x != 0.
func toBool(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("bool", args, 1); err != nil {
		return err
	}
	if !isNumeric(args[0]) {
		return createError(value.TypeError, "bool expects a numeric argument, got '%s'", args[0].GetType())
	}
	return &value.Boolean{Value: floatOf(args[0]) != 0}
}
