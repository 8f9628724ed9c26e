package std

import (
	"strings"
	"unicode/utf16"

	"github.com/mlaass/terminus/value"
)

var stringMethods = []*Builtin{
	{Name: "str.concat", Callback: strConcat},       // Concatenates the renderings of its arguments
	{Name: "str.length", Callback: strLength},       // Returns the UTF-16 code-unit length
	{Name: "str.substring", Callback: strSubstring}, // Extracts s[start..end] by byte offsets
	{Name: "str.replace", Callback: strReplace},     // Replaces all occurrences of a substring
	{Name: "str.toUpper", Callback: strToUpper},     // ASCII uppercase
	{Name: "str.toLower", Callback: strToLower},     // ASCII lowercase
	{Name: "str.trim", Callback: strTrim},           // Strips leading/trailing ASCII whitespace
}

// init registers the string builtins.
func init() {
	Builtins = append(Builtins, stringMethods...)
}

// strConcat concatenates the renderings of heterogeneous arguments:
// integers in decimal, floats in their default formatting, booleans as
// true/false, strings and dates verbatim.
//
// Syntax: str.concat(a, b, ...)
//
// Example:
//
//	str.concat('n=', 42, ', ok=', true); // Returns "n=42, ok=true"
func strConcat(rt Runtime, args ...value.Value) value.Value {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(arg.ToString())
	}
	return &value.String{Value: b.String()}
}

// strLength returns the length of a string in UTF-16 code units. This
// is the documented contract even though the other string builtins work
// on bytes: a character outside the basic multilingual plane counts as
// two.
//
// Syntax: str.length(s)
func strLength(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("str.length", args, 1); err != nil {
		return err
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return createError(value.TypeError, "str.length expects a string, got '%s'", args[0].GetType())
	}
	return &value.Integer{Value: int64(len(utf16.Encode([]rune(s.Value))))}
}

// strSubstring returns s[start..end] by byte offsets, requiring
// 0 <= start <= end <= len(s).
//
// Syntax: str.substring(s, start, end)
func strSubstring(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("str.substring", args, 3); err != nil {
		return err
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return createError(value.TypeError, "str.substring expects a string, got '%s'", args[0].GetType())
	}
	start, end, errVal := boundsOf("str.substring", args[1], args[2], int64(len(s.Value)))
	if errVal != nil {
		return errVal
	}
	return &value.String{Value: s.Value[start:end]}
}

// boundsOf validates a start/end pair against a length, enforcing
// 0 <= start <= end <= limit. Shared by str.substring and list.slice.
func boundsOf(name string, startArg, endArg value.Value, limit int64) (int64, int64, value.Value) {
	start, ok := startArg.(*value.Integer)
	if !ok {
		return 0, 0, createError(value.TypeError, "%s expects integer bounds, got '%s'", name, startArg.GetType())
	}
	end, ok := endArg.(*value.Integer)
	if !ok {
		return 0, 0, createError(value.TypeError, "%s expects integer bounds, got '%s'", name, endArg.GetType())
	}
	if start.Value < 0 || end.Value < start.Value || end.Value > limit {
		return 0, 0, createError(value.InvalidOperation,
			"%s bounds [%d, %d) out of range for length %d", name, start.Value, end.Value, limit)
	}
	return start.Value, end.Value, nil
}

// strReplace replaces all non-overlapping occurrences of old with new.
//
// Syntax: str.replace(s, old, new)
func strReplace(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("str.replace", args, 3); err != nil {
		return err
	}
	parts := make([]string, 3)
	for i, arg := range args {
		s, ok := arg.(*value.String)
		if !ok {
			return createError(value.TypeError, "str.replace expects strings, got '%s'", arg.GetType())
		}
		parts[i] = s.Value
	}
	return &value.String{Value: strings.ReplaceAll(parts[0], parts[1], parts[2])}
}

// strToUpper uppercases ASCII letters; other bytes pass through.
//
// Syntax: str.toUpper(s)
func strToUpper(rt Runtime, args ...value.Value) value.Value {
	return asciiMap("str.toUpper", args, func(c byte) byte {
		if c >= 'a' && c <= 'z' {
			return c - ('a' - 'A')
		}
		return c
	})
}

// strToLower lowercases ASCII letters; other bytes pass through.
//
// Syntax: str.toLower(s)
func strToLower(rt Runtime, args ...value.Value) value.Value {
	return asciiMap("str.toLower", args, func(c byte) byte {
		if c >= 'A' && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	})
}

// asciiMap applies a byte mapping to a single string argument.
func asciiMap(name string, args []value.Value, f func(byte) byte) value.Value {
	if err := wantArgs(name, args, 1); err != nil {
		return err
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return createError(value.TypeError, "%s expects a string, got '%s'", name, args[0].GetType())
	}
	out := []byte(s.Value)
	for i := range out {
		out[i] = f(out[i])
	}
	return &value.String{Value: string(out)}
}

// strTrim strips leading and trailing ASCII whitespace.
//
// Syntax: str.trim(s)
func strTrim(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("str.trim", args, 1); err != nil {
		return err
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return createError(value.TypeError, "str.trim expects a string, got '%s'", args[0].GetType())
	}
	return &value.String{Value: strings.Trim(s.Value, " \t\n\r\f\v")}
}
