package sqlformat

import (
	"reflect"
	"testing"
)

func tok(typ TokenType, value string) Token {
	return Token{Type: typ, Value: value}
}

func tokenValuesAndTypes(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Type: t.Type, Value: t.Value}
	}
	return out
}

func TestTokenize(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		dialect  Dialect
		expected []Token
	}

	testCases := []testCase{
		{
			name:    "scans a line comment",
			input:   "-- my comment\nSELECT",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenLineComment, "-- my comment"),
				tok(TokenReservedTopLevel, "SELECT"),
			},
		},
		{
			name:    "scans a block comment",
			input:   "/* hello */ SELECT",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenBlockComment, "/* hello */"),
				tok(TokenReservedTopLevel, "SELECT"),
			},
		},
		{
			name:    "scans a single-quoted string with doubled escape",
			input:   `'it''s fine'`,
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenString, `'it''s fine'`),
			},
		},
		{
			name:    "scans a double-quoted identifier",
			input:   `"my table"`,
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenWord, `"my table"`),
			},
		},
		{
			name:    "scans parens",
			input:   "()",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenOpenParen, "("),
				tok(TokenCloseParen, ")"),
			},
		},
		{
			name:    "scans a bare positional placeholder",
			input:   "?",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenPlaceholder, "?"),
			},
		},
		{
			name:    "scans a named placeholder",
			input:   ":name",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenPlaceholder, ":name"),
			},
		},
		{
			name:    "scans a numbered placeholder for postgres",
			input:   "$1",
			dialect: DialectPostgreSQL,
			expected: []Token{
				tok(TokenPlaceholder, "$1"),
			},
		},
		{
			name:    "scans an integer",
			input:   "42",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenNumber, "42"),
			},
		},
		{
			name:    "scans a decimal",
			input:   "3.14",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenNumber, "3.14"),
			},
		},
		{
			name:    "distinguishes reserved top level from a plain word",
			input:   "SELECT selected",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenReservedTopLevel, "SELECT"),
				tok(TokenWord, "selected"),
			},
		},
		{
			name:    "matches multi-word keywords as one token",
			input:   "GROUP BY",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenReservedTopLevel, "GROUP BY"),
			},
		},
		{
			name:    "matches multi-word keywords across irregular whitespace",
			input:   "GROUP   BY",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenReservedTopLevel, "GROUP   BY"),
			},
		},
		{
			name:    "scans an operator run",
			input:   "a<>b",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenWord, "a"),
				tok(TokenOperator, "<>"),
				tok(TokenWord, "b"),
			},
		},
		{
			name:    "falls back to punctuation for an unclassified character",
			input:   ",",
			dialect: DialectSQL,
			expected: []Token{
				tok(TokenPunctuation, ","),
			},
		},
		{
			name:    "scans a dollar-quoted string for postgres",
			input:   "$tag$ inner $$ text $tag$",
			dialect: DialectPostgreSQL,
			expected: []Token{
				tok(TokenString, "$tag$ inner $$ text $tag$"),
			},
		},
		{
			name:    "reclassifies an oracle substitution variable as a placeholder",
			input:   "&myvar",
			dialect: DialectPLSQL,
			expected: []Token{
				tok(TokenPlaceholder, "&myvar"),
			},
		},
		{
			name:    "reclassifies a bare n1ql named placeholder",
			input:   "$customer",
			dialect: DialectN1QL,
			expected: []Token{
				tok(TokenPlaceholder, "$customer"),
			},
		},
		{
			name:    "reclassifies a tsql system variable as reserved",
			input:   "@@ROWCOUNT",
			dialect: DialectTSQL,
			expected: []Token{
				tok(TokenReserved, "@@ROWCOUNT"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.input, tc.dialect)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := tokenValuesAndTypes(tokens)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTokenizeWhitespaceBefore(t *testing.T) {
	tokens, err := Tokenize("SELECT   a", DialectSQL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].WhitespaceBefore != "   " {
		t.Errorf("WhitespaceBefore = %q, want %q", tokens[1].WhitespaceBefore, "   ")
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := Tokenize("", DialectSQL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, got %d", len(tokens))
	}
}

func TestTokenizeUnknownDialect(t *testing.T) {
	_, err := Tokenize("SELECT 1", Dialect("not-a-real-dialect"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*UnsupportedDialectError); !ok {
		t.Errorf("expected *UnsupportedDialectError, got %T", err)
	}
}
