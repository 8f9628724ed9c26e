package value

// Equals reports structural equality of two values. Lists compare
// element-wise; numeric values compare within their own kind only (an
// Integer never equals a Float here — the evaluator's promotion rules
// live in the eval package, not in the model).
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.GetType() != b.GetType() {
		return false
	}
	switch av := a.(type) {
	case *Integer:
		return av.Value == b.(*Integer).Value
	case *Float:
		return av.Value == b.(*Float).Value
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Date:
		return av.Value == b.(*Date).Value
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		return av.Name == b.(*Function).Name
	case *FunctionDef:
		return av == b.(*FunctionDef)
	case *Error:
		bv := b.(*Error)
		return av.Kind == bv.Kind && av.Message == bv.Message
	}
	return false
}
