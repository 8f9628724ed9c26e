package lexer

import "fmt"

// TokenType classifies a lexical token in a terminus expression.
// It is defined as a string to allow for easy comparison and debugging.
type TokenType string

// TokenType constants.
// These cover every syntactic element the expression language knows about:
// literals, operators, and the structural tokens the parser keys on.
const (
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"

	// IDENTIFIER_TOK is a symbol name: a variable, constant, or function.
	// Identifiers may contain dots ("str.concat") and may start with '$'.
	IDENTIFIER_TOK TokenType = "identifier"

	// NUMBER_TOK is a numeric literal, integer or float, including any
	// attached unary sign and scientific exponent ("-1.5e-3").
	NUMBER_TOK TokenType = "number"

	// STRING_TOK is a quoted string literal. The literal keeps its
	// surrounding quotes; the parser strips them.
	STRING_TOK TokenType = "string"

	// DATE_TOK is a date literal of the form d'...' or d"...".
	// The literal keeps the d prefix and both quotes.
	DATE_TOK TokenType = "date_string"

	// OPERATOR_TOK is a binary operator: symbolic ("+", "<<", "**") or
	// a keyword ("and", "or", "xor", "mod").
	OPERATOR_TOK TokenType = "operator"

	// UNARY_OP_TOK is a prefix operator: "-", "!", or "not".
	UNARY_OP_TOK TokenType = "unary_operator"

	// Structural tokens
	LEFT_PAREN    TokenType = "left_paren"
	RIGHT_PAREN   TokenType = "right_paren"
	LEFT_BRACKET  TokenType = "left_bracket"
	RIGHT_BRACKET TokenType = "right_bracket"
	COMMA_DELIM   TokenType = "comma"
)

// KEYWORD_OPS_MAP maps operator keywords to their token types.
// When the lexer scans an identifier-like word it consults this map to
// decide whether the word is really an operator. Every other word is an
// ordinary identifier.
var KEYWORD_OPS_MAP = map[string]TokenType{
	"and": OPERATOR_TOK, // logical AND
	"or":  OPERATOR_TOK, // logical OR
	"xor": OPERATOR_TOK, // bitwise XOR
	"mod": OPERATOR_TOK, // modulo
	"not": UNARY_OP_TOK, // logical NOT (prefix)
}

// Token is a single lexical token.
//
// Fields:
//   - Type: The category of the token
//   - Literal: The exact text from the source, quotes and signs included
//   - Line: Line number in the source (1-indexed)
//   - Column: Column number where the token starts (1-indexed)
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source (1-indexed)
	Column  int       // Column number in source (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including
// position. This constructor is used during lexical analysis to preserve
// source location information for error reporting.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Print outputs a human-readable representation of the token to standard
// output in the form "literal:type". Used for debugging.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupWord determines the token type for an identifier-like word.
// Operator keywords ("and", "or", "not", "mod", "xor") become operator
// tokens; everything else is a user-facing identifier.
func lookupWord(word string) TokenType {
	if tok, ok := KEYWORD_OPS_MAP[word]; ok {
		return tok
	}
	return IDENTIFIER_TOK
}
