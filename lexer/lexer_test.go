package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestLexer_ConsumeTokens tests basic tokenization of numbers,
// operators, and structural symbols
func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2 * 31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "123"),
				NewToken(OPERATOR_TOK, "+"),
				NewToken(NUMBER_TOK, "2"),
				NewToken(OPERATOR_TOK, "*"),
				NewToken(NUMBER_TOK, "31"),
				NewToken(OPERATOR_TOK, "-"),
				NewToken(NUMBER_TOK, "12"),
			},
		},
		{
			Input: `( ) [ ] , abc a12`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_TOK, "abc"),
				NewToken(IDENTIFIER_TOK, "a12"),
			},
		},
		{
			Input: `<= >= == != << >> ** //`,
			ExpectedTokens: []Token{
				NewToken(OPERATOR_TOK, "<="),
				NewToken(OPERATOR_TOK, ">="),
				NewToken(OPERATOR_TOK, "=="),
				NewToken(OPERATOR_TOK, "!="),
				NewToken(OPERATOR_TOK, "<<"),
				NewToken(OPERATOR_TOK, ">>"),
				NewToken(OPERATOR_TOK, "**"),
				NewToken(OPERATOR_TOK, "//"),
			},
		},
		{
			Input: `< > & | % /`,
			ExpectedTokens: []Token{
				NewToken(OPERATOR_TOK, "<"),
				NewToken(OPERATOR_TOK, ">"),
				NewToken(OPERATOR_TOK, "&"),
				NewToken(OPERATOR_TOK, "|"),
				NewToken(OPERATOR_TOK, "%"),
				NewToken(OPERATOR_TOK, "/"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_KeywordOperators verifies that the word operators are
// emitted as operator tokens, not identifiers
func TestLexer_KeywordOperators(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `a and b or c xor d mod e`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TOK, "a"),
				NewToken(OPERATOR_TOK, "and"),
				NewToken(IDENTIFIER_TOK, "b"),
				NewToken(OPERATOR_TOK, "or"),
				NewToken(IDENTIFIER_TOK, "c"),
				NewToken(OPERATOR_TOK, "xor"),
				NewToken(IDENTIFIER_TOK, "d"),
				NewToken(OPERATOR_TOK, "mod"),
				NewToken(IDENTIFIER_TOK, "e"),
			},
		},
		{
			Input: `not x`,
			ExpectedTokens: []Token{
				NewToken(UNARY_OP_TOK, "not"),
				NewToken(IDENTIFIER_TOK, "x"),
			},
		},
		{
			// "android" starts with "and" but is a plain identifier
			Input: `android`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TOK, "android"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_UnaryMinus verifies the disambiguation of '-' as a numeric
// sign, a unary operator, and a binary operator
func TestLexer_UnaryMinus(t *testing.T) {
	tests := []TestConsumeToken{
		{
			// leading minus glues onto the number
			Input: `-5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "-5"),
			},
		},
		{
			// after a binary operator the minus is a sign
			Input: `3 * -5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "3"),
				NewToken(OPERATOR_TOK, "*"),
				NewToken(NUMBER_TOK, "-5"),
			},
		},
		{
			// between two operands the minus is a binary operator
			Input: `3 - 5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "3"),
				NewToken(OPERATOR_TOK, "-"),
				NewToken(NUMBER_TOK, "5"),
			},
		},
		{
			// a minus before an identifier is a unary operator
			Input: `-x`,
			ExpectedTokens: []Token{
				NewToken(UNARY_OP_TOK, "-"),
				NewToken(IDENTIFIER_TOK, "x"),
			},
		},
		{
			// after commas and open delimiters the minus is a sign
			Input: `f(-1, -2) + [-3]`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TOK, "f"),
				NewToken(LEFT_PAREN, "("),
				NewToken(NUMBER_TOK, "-1"),
				NewToken(COMMA_DELIM, ","),
				NewToken(NUMBER_TOK, "-2"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(OPERATOR_TOK, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(NUMBER_TOK, "-3"),
				NewToken(RIGHT_BRACKET, "]"),
			},
		},
		{
			// a closing paren makes the next minus binary
			Input: `(1) - 2`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(NUMBER_TOK, "1"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(OPERATOR_TOK, "-"),
				NewToken(NUMBER_TOK, "2"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_Numbers verifies integer, float, and scientific forms
func TestLexer_Numbers(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `42 3.14 .5 -0.25 1e9 1.4e9 12E-2 2e+10`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "42"),
				NewToken(NUMBER_TOK, "3.14"),
				NewToken(NUMBER_TOK, ".5"),
				// after a number the minus is binary, not a sign
				NewToken(OPERATOR_TOK, "-"),
				NewToken(NUMBER_TOK, "0.25"),
				NewToken(NUMBER_TOK, "1e9"),
				NewToken(NUMBER_TOK, "1.4e9"),
				NewToken(NUMBER_TOK, "12E-2"),
				NewToken(NUMBER_TOK, "2e+10"),
			},
		},
		{
			// an 'e' without a digit after it is not an exponent
			Input: `2e`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_TOK, "2"),
				NewToken(IDENTIFIER_TOK, "e"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_StringsAndDates verifies that string and date literals keep
// their full lexemes, quotes included
func TestLexer_StringsAndDates(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `'hello' "world"`,
			ExpectedTokens: []Token{
				NewToken(STRING_TOK, `'hello'`),
				NewToken(STRING_TOK, `"world"`),
			},
		},
		{
			Input: `'it\'s'`,
			ExpectedTokens: []Token{
				NewToken(STRING_TOK, `'it\'s'`),
			},
		},
		{
			Input: `d'2023-01-01' < d"2023-12-31"`,
			ExpectedTokens: []Token{
				NewToken(DATE_TOK, `d'2023-01-01'`),
				NewToken(OPERATOR_TOK, "<"),
				NewToken(DATE_TOK, `d"2023-12-31"`),
			},
		},
		{
			// 'd' not followed by a quote is an ordinary identifier
			Input: `d + dx`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TOK, "d"),
				NewToken(OPERATOR_TOK, "+"),
				NewToken(IDENTIFIER_TOK, "dx"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_Identifiers verifies dotted names and the extended start set
func TestLexer_Identifiers(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `str.concat list.length _tmp $price x.y.z`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TOK, "str.concat"),
				NewToken(IDENTIFIER_TOK, "list.length"),
				NewToken(IDENTIFIER_TOK, "_tmp"),
				NewToken(IDENTIFIER_TOK, "$price"),
				NewToken(IDENTIFIER_TOK, "x.y.z"),
			},
		},
	}

	runTokenTests(t, tests)
}

// TestLexer_SkipsUnknownBytes verifies that unrecognized bytes vanish
// from the token stream without failing the scan
func TestLexer_SkipsUnknownBytes(t *testing.T) {
	tokens, err := Tokenize(`1 @ # ; 2`)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		NewToken(NUMBER_TOK, "1"),
		NewToken(NUMBER_TOK, "2"),
	}, stripMetadata(tokens))
}

// TestLexer_Errors verifies the failure modes of the scanner
func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		Input        string
		ExpectedKind ErrorKind
	}{
		{`'unterminated`, UnterminatedString},
		{`"also unterminated`, UnterminatedString},
		{`d'2023-01-01`, UnterminatedString},
		{`'ends with escape\`, UnterminatedString},
		{`-.`, BadNumber},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.Input)
		require.Error(t, err, "input %q", tt.Input)
		lexErr, ok := err.(*Error)
		require.True(t, ok, "input %q: expected *lexer.Error, got %T", tt.Input, err)
		assert.Equal(t, tt.ExpectedKind, lexErr.Kind, "input %q", tt.Input)
	}
}

// TestLexer_Positions verifies line and column tracking across newlines
func TestLexer_Positions(t *testing.T) {
	tokens, err := Tokenize("1 +\n  2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[1].Line)
	assert.Equal(t, 2, tokens[2].Line)
}

// runTokenTests checks the token type/literal pairs for each case,
// ignoring position metadata
func runTokenTests(t *testing.T, tests []TestConsumeToken) {
	t.Helper()
	for _, tt := range tests {
		tokens, err := Tokenize(tt.Input)
		require.NoError(t, err, "input %q", tt.Input)
		assert.Equal(t, tt.ExpectedTokens, stripMetadata(tokens), "input %q", tt.Input)
	}
}

// stripMetadata drops line/column info so tables can use NewToken
func stripMetadata(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, NewToken(tok.Type, tok.Literal))
	}
	return out
}
