package sqlformat

func init() {
	for _, build := range []func() *DialectSpec{
		sqlDialectSpec,
		mysqlDialectSpec,
		mariadbDialectSpec,
		postgresqlDialectSpec,
		redshiftDialectSpec,
		bigqueryDialectSpec,
		db2DialectSpec,
		hiveDialectSpec,
		sparkDialectSpec,
		n1qlDialectSpec,
		plsqlDialectSpec,
		tsqlDialectSpec,
	} {
		spec := build()
		dialectSpecs[spec.Name] = spec
	}
}

func sqlDialectSpec() *DialectSpec {
	return baseSpec(DialectSQL)
}

func mysqlFamilySpec(name Dialect) *DialectSpec {
	spec := baseSpec(name)
	spec.IdentifierQuotes = []QuoteStyle{
		{Open: '`', Close: '`', DoubledEscape: true},
	}
	spec.StringQuotes = append(spec.StringQuotes, QuoteStyle{
		Open: '"', Close: '"', DoubledEscape: true, BackslashEscape: true,
	})
	spec.StringPrefixes = []string{"N", "X"}
	spec.LineCommentPrefixes = append(spec.LineCommentPrefixes, "#")
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "ON DUPLICATE KEY UPDATE")
	spec.ReservedNewline = withExtra(spec.ReservedNewline, "STRAIGHT_JOIN")
	spec.PlaceholderNamedPrefixes = []rune{':', '@'}
	return spec
}

func mysqlDialectSpec() *DialectSpec {
	return mysqlFamilySpec(DialectMySQL)
}

func mariadbDialectSpec() *DialectSpec {
	spec := mysqlFamilySpec(DialectMariaDB)
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "RETURNING")
	return spec
}

func postgresFamilySpec(name Dialect) *DialectSpec {
	spec := baseSpec(name)
	spec.SupportsDollarQuotedStrings = true
	spec.StringPrefixes = []string{"E", "X", "B"}
	spec.PlaceholderNumberedPrefixes = []rune{'$'}
	spec.PlaceholderNamedPrefixes = []rune{':', '@'}
	spec.BarePositionalMark = 0 // Postgres uses $1, not bare '?'
	spec.ExtraOperatorChars = ":"
	spec.ReservedNewline = withExtra(spec.ReservedNewline, "LATERAL JOIN")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "ON CONFLICT", "DO UPDATE", "DO NOTHING", "LATERAL")
	return spec
}

func postgresqlDialectSpec() *DialectSpec {
	return postgresFamilySpec(DialectPostgreSQL)
}

func redshiftDialectSpec() *DialectSpec {
	spec := postgresFamilySpec(DialectRedshift)
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "DISTKEY", "SORTKEY", "DISTSTYLE", "ENCODE")
	return spec
}

func bigqueryDialectSpec() *DialectSpec {
	spec := baseSpec(DialectBigQuery)
	spec.IdentifierQuotes = []QuoteStyle{
		{Open: '`', Close: '`', DoubledEscape: false, BackslashEscape: true},
	}
	spec.StringQuotes = append(spec.StringQuotes, QuoteStyle{
		Open: '"', Close: '"', DoubledEscape: false, BackslashEscape: true,
	})
	spec.StringPrefixes = []string{"R", "B", "RB", "BR"}
	spec.PlaceholderNamedPrefixes = []rune{'@'}
	spec.PlaceholderNumberedPrefixes = []rune{'?'}
	spec.BarePositionalMark = 0
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "QUALIFY")
	spec.ReservedNewline = withExtra(spec.ReservedNewline, "UNNEST")
	spec.ExtraWordLeadChars = []rune{'@'}
	spec.ExtraWordContinueChars = []rune{'@'}
	return spec
}

func db2DialectSpec() *DialectSpec {
	spec := baseSpec(DialectDB2)
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "FETCH FIRST ROWS ONLY")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "ORGANIZE BY", "VOLATILE")
	spec.PlaceholderNamedPrefixes = []rune{':'}
	return spec
}

func hiveDialectSpec() *DialectSpec {
	spec := baseSpec(DialectHive)
	spec.IdentifierQuotes = []QuoteStyle{
		{Open: '`', Close: '`', DoubledEscape: true},
	}
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "LATERAL VIEW", "CLUSTER BY", "DISTRIBUTE BY", "SORT BY")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "LOCATION", "STORED AS", "ROW FORMAT")
	return spec
}

func sparkDialectSpec() *DialectSpec {
	spec := hiveDialectSpec()
	spec.Name = DialectSpark
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "PIVOT")
	return spec
}

func n1qlDialectSpec() *DialectSpec {
	spec := baseSpec(DialectN1QL)
	spec.IdentifierQuotes = []QuoteStyle{
		{Open: '`', Close: '`', DoubledEscape: true},
	}
	spec.PlaceholderNumberedPrefixes = []rune{'$'}
	spec.PlaceholderNamedPrefixes = []rune{':', '@'}
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "NEST", "UNNEST", "LETTING")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "MISSING", "SATISFIES", "RAW")
	// Couchbase also allows bare "$name" (no leading ':'/'@'), handled by
	// the dialect_overrides.go tokenOverride hook rather than as a generic
	// placeholder prefix, since '$' here only means "named" when it is NOT
	// immediately followed by digits (that case is the generic numbered
	// placeholder above, which the fixed lexer priority already tries first).
	spec.ExtraWordLeadChars = []rune{'$'}
	return spec
}

func plsqlDialectSpec() *DialectSpec {
	spec := baseSpec(DialectPLSQL)
	spec.PlaceholderNamedPrefixes = []rune{':'}
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "CONNECT BY", "START WITH")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "ROWNUM", "ROWID", "DUAL", "NOCOPY")
	// Oracle substitution variables: &var, &&var. Scanned whole as a WORD
	// by extending the word-lead/continue sets, then reclassified to a
	// PLACEHOLDER by the dialect_overrides.go hook.
	spec.ExtraWordLeadChars = []rune{'&'}
	spec.ExtraWordContinueChars = []rune{'&'}
	return spec
}

func tsqlDialectSpec() *DialectSpec {
	spec := baseSpec(DialectTSQL)
	spec.IdentifierQuotes = []QuoteStyle{
		{Open: '[', Close: ']', DoubledEscape: true},
		{Open: '"', Close: '"', DoubledEscape: true},
	}
	spec.StringPrefixes = []string{"N"}
	spec.PlaceholderNamedPrefixes = []rune{'@'}
	spec.ReservedTopLevel = withExtra(spec.ReservedTopLevel, "FETCH NEXT")
	spec.ReservedPlain = withExtra(spec.ReservedPlain, "TOP", "OUTPUT", "MERGE")
	// @@ROWCOUNT, @@IDENTITY, … are system variables, not caller-supplied
	// placeholders. Scanned whole via the extended word-continue set, then
	// reclassified to RESERVED by the dialect_overrides.go hook.
	spec.ExtraWordLeadChars = []rune{'@'}
	spec.ExtraWordContinueChars = []rune{'@'}
	return spec
}
