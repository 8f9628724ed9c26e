package std

import "github.com/mlaass/terminus/value"

var dateMethods = []*Builtin{
	{Name: "date.addDays", Callback: dateAddDays}, // Stub: returns the date unchanged
}

// init registers the date builtins.
func init() {
	Builtins = append(Builtins, dateMethods...)
}

// dateAddDays validates its arguments and returns the date unchanged.
// Dates are opaque ordered strings; arithmetic on them is not
// implemented.
//
// Syntax: date.addDays(d, n)
func dateAddDays(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("date.addDays", args, 2); err != nil {
		return err
	}
	d, ok := args[0].(*value.Date)
	if !ok {
		return createError(value.TypeError, "date.addDays expects a date, got '%s'", args[0].GetType())
	}
	if _, ok := args[1].(*value.Integer); !ok {
		return createError(value.TypeError, "date.addDays expects an integer, got '%s'", args[1].GetType())
	}
	return d.Clone()
}
