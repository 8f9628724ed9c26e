package std

import "github.com/mlaass/terminus/value"

var listMethods = []*Builtin{
	{Name: "list.length", Callback: listLength}, // Returns the element count
	{Name: "list.get", Callback: listGet},       // Returns the element at an index
	{Name: "list.append", Callback: listAppend}, // Returns a new list with a value appended
	{Name: "list.concat", Callback: listConcat}, // Returns the concatenation of lists
	{Name: "list.slice", Callback: listSlice},   // Returns l[start..end] as a new list
	{Name: "list.map", Callback: listMap},       // Applies a function to every element
	{Name: "list.filter", Callback: listFilter}, // Keeps elements a predicate accepts
}

// init registers the list builtins.
func init() {
	Builtins = append(Builtins, listMethods...)
}

// listOf extracts the list argument common to every builtin here.
func listOf(name string, arg value.Value) (*value.List, *value.Error) {
	l, ok := arg.(*value.List)
	if !ok {
		return nil, createError(value.TypeError, "%s expects a list, got '%s'", name, arg.GetType())
	}
	return l, nil
}

// listLength returns the number of elements.
//
// Syntax: list.length(l)
func listLength(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.length", args, 1); err != nil {
		return err
	}
	l, errVal := listOf("list.length", args[0])
	if errVal != nil {
		return errVal
	}
	return &value.Integer{Value: int64(len(l.Elements))}
}

// listGet returns the element at index i.
//
// Syntax: list.get(l, i)
//
// Example:
//
//	list.get([1, 2, 3], 1); // Returns 2
func listGet(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.get", args, 2); err != nil {
		return err
	}
	l, errVal := listOf("list.get", args[0])
	if errVal != nil {
		return errVal
	}
	i, ok := args[1].(*value.Integer)
	if !ok {
		return createError(value.TypeError, "list.get expects an integer index, got '%s'", args[1].GetType())
	}
	if i.Value < 0 || i.Value >= int64(len(l.Elements)) {
		return createError(value.IndexOutOfRange,
			"list.get index %d out of range for length %d", i.Value, len(l.Elements))
	}
	return l.Elements[i.Value]
}

// listAppend returns a new list with v appended. The input list is
// never modified.
//
// Syntax: list.append(l, v)
func listAppend(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.append", args, 2); err != nil {
		return err
	}
	l, errVal := listOf("list.append", args[0])
	if errVal != nil {
		return errVal
	}
	elements := make([]value.Value, 0, len(l.Elements)+1)
	elements = append(elements, l.Elements...)
	elements = append(elements, args[1])
	return &value.List{Elements: elements}
}

// listConcat returns a new list holding the elements of every argument
// list in order.
//
// Syntax: list.concat(l1, l2, ...)
func listConcat(rt Runtime, args ...value.Value) value.Value {
	if len(args) == 0 {
		return createError(value.InvalidArgumentCount, "list.concat expects at least 1 argument, got 0")
	}
	elements := make([]value.Value, 0)
	for _, arg := range args {
		l, errVal := listOf("list.concat", arg)
		if errVal != nil {
			return errVal
		}
		elements = append(elements, l.Elements...)
	}
	return &value.List{Elements: elements}
}

// listSlice returns l[start..end] as a new list, with the same bounds
// rule as str.substring: 0 <= start <= end <= length.
//
// Syntax: list.slice(l, start, end)
func listSlice(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.slice", args, 3); err != nil {
		return err
	}
	l, errVal := listOf("list.slice", args[0])
	if errVal != nil {
		return errVal
	}
	start, end, boundErr := boundsOf("list.slice", args[1], args[2], int64(len(l.Elements)))
	if boundErr != nil {
		return boundErr
	}
	elements := make([]value.Value, end-start)
	copy(elements, l.Elements[start:end])
	return &value.List{Elements: elements}
}

// isFunction reports whether v can be called.
func isFunction(v value.Value) bool {
	t := v.GetType()
	return t == value.FunctionType || t == value.FunctionDefType
}

// listMap applies a function to every element and returns the new list.
//
// Syntax: list.map(l, f)
//
// Example:
//
//	list.map([-1, 2, -3], abs); // Returns [1, 2, 3]
func listMap(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.map", args, 2); err != nil {
		return err
	}
	l, errVal := listOf("list.map", args[0])
	if errVal != nil {
		return errVal
	}
	if !isFunction(args[1]) {
		return createError(value.TypeError, "list.map expects a function, got '%s'", args[1].GetType())
	}
	elements := make([]value.Value, len(l.Elements))
	for i, elem := range l.Elements {
		result := rt.CallFunction(args[1], elem)
		if value.IsError(result) {
			return result
		}
		elements[i] = result
	}
	return &value.List{Elements: elements}
}

// listFilter keeps the elements for which the predicate returns true.
// The predicate must return a boolean for every element.
//
// Syntax: list.filter(l, f)
func listFilter(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("list.filter", args, 2); err != nil {
		return err
	}
	l, errVal := listOf("list.filter", args[0])
	if errVal != nil {
		return errVal
	}
	if !isFunction(args[1]) {
		return createError(value.TypeError, "list.filter expects a function, got '%s'", args[1].GetType())
	}
	elements := make([]value.Value, 0)
	for _, elem := range l.Elements {
		result := rt.CallFunction(args[1], elem)
		if value.IsError(result) {
			return result
		}
		keep, ok := result.(*value.Boolean)
		if !ok {
			return createError(value.TypeError,
				"list.filter predicate must return a boolean, got '%s'", result.GetType())
		}
		if keep.Value {
			elements = append(elements, elem)
		}
	}
	return &value.List{Elements: elements}
}
