package sqlformat

import "strings"

// Dialect Formatters are thin specializations of the engine: a configured
// Tokenizer plus, optionally, a tokenOverride hook the engine calls on
// every token before dispatch. Everything else is inherited from the
// generic Formatter Engine in formatter.go.
//
// Each override below reclassifies a WORD token that the generic
// tokenizer already had to scan whole (via the dialect's
// ExtraWordLeadChars/ExtraWordContinueChars in dialect_catalog.go) into
// the token type the dialect's quirky syntax actually means.

func init() {
	dialectOverrides[DialectPLSQL] = plsqlTokenOverride
	dialectOverrides[DialectN1QL] = n1qlTokenOverride
	dialectOverrides[DialectTSQL] = tsqlTokenOverride
}

// plsqlTokenOverride reclassifies Oracle substitution variables (&var,
// &&var) from WORD to PLACEHOLDER.
func plsqlTokenOverride(tok Token) Token {
	if tok.Type == TokenWord && strings.HasPrefix(tok.Value, "&") {
		tok.Type = TokenPlaceholder
		tok.Key = strings.TrimLeft(tok.Value, "&")
	}
	return tok
}

// n1qlTokenOverride reclassifies Couchbase N1QL's bare "$name" named
// placeholder (as opposed to "$1", which the generic numbered-placeholder
// scan already handles) from WORD to PLACEHOLDER.
func n1qlTokenOverride(tok Token) Token {
	if tok.Type == TokenWord && strings.HasPrefix(tok.Value, "$") {
		tok.Type = TokenPlaceholder
		tok.Key = strings.TrimPrefix(tok.Value, "$")
	}
	return tok
}

// tsqlTokenOverride reclassifies T-SQL's "@@"-prefixed system
// variables/functions (@@ROWCOUNT, @@IDENTITY, …) from WORD to RESERVED,
// distinguishing them from genuine "@var" caller-supplied placeholders
// (which the generic named-placeholder scan already turns into
// PLACEHOLDER tokens before word scanning ever sees them).
func tsqlTokenOverride(tok Token) Token {
	if tok.Type == TokenWord && strings.HasPrefix(tok.Value, "@@") {
		tok.Type = TokenReserved
	}
	return tok
}
