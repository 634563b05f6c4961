package sqlformat

// Dialect names a supported SQL variant.
type Dialect string

const (
	DialectBigQuery   Dialect = "bigquery"
	DialectDB2        Dialect = "db2"
	DialectHive       Dialect = "hive"
	DialectMariaDB    Dialect = "mariadb"
	DialectMySQL      Dialect = "mysql"
	DialectN1QL       Dialect = "n1ql"
	DialectPLSQL      Dialect = "plsql"
	DialectPostgreSQL Dialect = "postgresql"
	DialectRedshift   Dialect = "redshift"
	DialectSpark      Dialect = "spark"
	DialectSQL        Dialect = "sql"
	DialectTSQL       Dialect = "tsql"
)

// Dialects lists every dialect this package understands, in the order
// they appear in the public configuration surface.
var Dialects = []Dialect{
	DialectBigQuery,
	DialectDB2,
	DialectHive,
	DialectMariaDB,
	DialectMySQL,
	DialectN1QL,
	DialectPLSQL,
	DialectPostgreSQL,
	DialectRedshift,
	DialectSpark,
	DialectSQL,
	DialectTSQL,
}

// QuoteStyle describes one flavor of quoted string or quoted identifier:
// the open/close delimiter runes and the escaping convention used inside.
type QuoteStyle struct {
	Open            rune
	Close           rune
	DoubledEscape   bool // a doubled Close rune is a literal Close, not the end
	BackslashEscape bool // a backslash escapes the following rune
}

// DialectSpec is a passive data record: reserved-keyword lists, quoting
// rules, comment syntax, placeholder prefixes and operator characters for
// one dialect. It has no behavior; the Tokenizer consults it, but all
// control flow lives in tokenizer.go and formatter.go.
type DialectSpec struct {
	Name Dialect

	// Four disjoint keyword classes, matched case-insensitively and
	// longest-match-first (see dialect_registry.go).
	ReservedTopLevel         []string
	ReservedTopLevelNoIndent []string
	ReservedNewline          []string
	ReservedPlain            []string

	StringQuotes     []QuoteStyle
	IdentifierQuotes []QuoteStyle
	// StringPrefixes lists case-insensitive letter prefixes (N, E, X, B, …)
	// that, placed immediately before a recognized string-quote opener with
	// no intervening whitespace, are absorbed into the string token.
	StringPrefixes []string

	LineCommentPrefixes        []string
	BlockCommentOpen            string
	BlockCommentClose           string
	SupportsNestedBlockComments bool
	SupportsDollarQuotedStrings bool

	// PlaceholderNumberedPrefixes are runes that, followed immediately by
	// one or more digits, form a numbered placeholder ($1, $2, …).
	PlaceholderNumberedPrefixes []rune
	// BarePositionalMark is a rune that alone (no digits, no identifier)
	// is itself a positional placeholder (e.g. '?'). Zero disables it.
	BarePositionalMark rune
	// PlaceholderNamedPrefixes are runes that, followed immediately by an
	// identifier, form a named placeholder (:name, @var).
	PlaceholderNamedPrefixes []rune

	// ExtraOperatorChars are appended to the default operator character
	// set for this dialect (e.g. ':' for Postgres's "::" cast operator).
	ExtraOperatorChars string

	// ExtraWordLeadChars/ExtraWordContinueChars extend what counts as the
	// start/continuation of a WORD token, used by dialect token-override
	// hooks that reclassify a whole word after the fact (dialect_overrides.go).
	ExtraWordLeadChars     []rune
	ExtraWordContinueChars []rune
}

// TokenOverrideFunc is a per-dialect hook: each Dialect Formatter may
// supply one, called on every token before the Formatter Engine dispatches
// on its type, to reclassify dialect-specific quirks.
type TokenOverrideFunc func(Token) Token

const defaultOperatorChars = "+-*/%=<>!~^&|"

func isOperatorChar(ch rune, spec *DialectSpec) bool {
	if containsRune(defaultOperatorChars, ch) {
		return true
	}
	return containsRune(spec.ExtraOperatorChars, ch)
}

func containsRune(s string, ch rune) bool {
	for _, r := range s {
		if r == ch {
			return true
		}
	}
	return false
}

// dialectSpecs is populated once, at init time, by dialect_catalog.go.
var dialectSpecs = map[Dialect]*DialectSpec{}

// dialectOverrides holds the optional tokenOverride hook for dialects that
// need one (dialect_overrides.go).
var dialectOverrides = map[Dialect]TokenOverrideFunc{}

func lookupDialectSpec(d Dialect) (*DialectSpec, error) {
	spec, ok := dialectSpecs[d]
	if !ok {
		return nil, &UnsupportedDialectError{Language: string(d)}
	}
	return spec, nil
}
