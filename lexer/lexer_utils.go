package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWhitespace reports whether c is ASCII whitespace.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isQuote reports whether c opens a string or date literal body.
func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// isIdentStart reports whether c can start an identifier.
func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_' || c == '$'
}

// isIdentPart reports whether c can continue an identifier.
// Dots are part of identifiers so builtin names like "str.concat"
// tokenize as one symbol.
func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '.'
}
