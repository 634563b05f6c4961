package sqlformat

// Base ANSI-ish keyword tables shared by every dialect. Each concrete
// dialect in dialect_catalog.go starts from a copy of these and adds or
// removes a handful of entries, the way sql-formatter-style tables are
// usually organized: one shared core plus small per-dialect diffs.

var baseReservedTopLevel = []string{
	"SELECT", "FROM", "WHERE", "GROUP BY", "HAVING", "ORDER BY",
	"LIMIT", "OFFSET", "INSERT INTO", "UPDATE", "DELETE FROM", "SET",
	"VALUES", "RETURNING", "WITH", "WINDOW", "PARTITION BY",
	"FETCH FIRST", "FOR UPDATE",
}

var baseReservedTopLevelNoIndent = []string{
	"UNION", "UNION ALL", "EXCEPT", "INTERSECT", "MINUS",
}

var baseReservedNewline = []string{
	"AND", "OR", "XOR",
	"JOIN", "INNER JOIN", "LEFT JOIN", "LEFT OUTER JOIN",
	"RIGHT JOIN", "RIGHT OUTER JOIN", "FULL JOIN", "FULL OUTER JOIN",
	"CROSS JOIN", "WHEN", "ELSE",
}

var baseReservedPlain = []string{
	"AS", "ON", "IN", "IS", "NOT", "NULL", "LIKE", "ILIKE", "BETWEEN",
	"EXISTS", "DISTINCT", "ALL", "ANY", "SOME", "CASE", "THEN", "END",
	"ASC", "DESC", "INTO", "BY", "OVER", "USING", "DEFAULT",
	"PRIMARY KEY", "FOREIGN KEY", "REFERENCES", "CONSTRAINT", "UNIQUE",
	"CHECK", "TRUE", "FALSE", "CAST", "INTERVAL",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
}

// cloneStrings returns a fresh copy so per-dialect customization never
// mutates a shared base slice.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// withExtra returns base plus extra, without mutating either.
func withExtra(base []string, extra ...string) []string {
	out := cloneStrings(base)
	return append(out, extra...)
}

// withoutWords returns base minus any entry in drop.
func withoutWords(base []string, drop ...string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, w := range drop {
		dropSet[w] = true
	}
	out := make([]string, 0, len(base))
	for _, w := range base {
		if !dropSet[w] {
			out = append(out, w)
		}
	}
	return out
}

// baseSpec returns the shared defaults every dialect starts from: ANSI
// keyword tables, '-- ' line comments, '/*…*/' block comments, single-quote
// strings, double-quote identifiers, and a bare '?' positional placeholder.
func baseSpec(name Dialect) *DialectSpec {
	return &DialectSpec{
		Name:                     name,
		ReservedTopLevel:         cloneStrings(baseReservedTopLevel),
		ReservedTopLevelNoIndent: cloneStrings(baseReservedTopLevelNoIndent),
		ReservedNewline:          cloneStrings(baseReservedNewline),
		ReservedPlain:            cloneStrings(baseReservedPlain),
		StringQuotes: []QuoteStyle{
			{Open: '\'', Close: '\'', DoubledEscape: true, BackslashEscape: true},
		},
		IdentifierQuotes: []QuoteStyle{
			{Open: '"', Close: '"', DoubledEscape: true},
		},
		LineCommentPrefixes:         []string{"--"},
		BlockCommentOpen:            "/*",
		BlockCommentClose:           "*/",
		SupportsNestedBlockComments: false,
		BarePositionalMark:          '?',
		PlaceholderNamedPrefixes:    []rune{':'},
	}
}
