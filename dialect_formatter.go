package sqlformat

// DialectFormatter favors composition over a subclass per dialect: a
// single value closed over a dialect and,
// implicitly through the dialect's registered compiledDialect and
// tokenOverride hook, everything a bespoke per-dialect type would have
// needed to override. There is no dynamic dispatch beyond the one
// tokenOverride hook already wired in dialect_overrides.go.
type DialectFormatter struct {
	dialect Dialect
}

// NewDialectFormatter returns a DialectFormatter bound to dialect, or
// UnsupportedDialectError if dialect has no registered DialectSpec.
func NewDialectFormatter(dialect Dialect) (*DialectFormatter, error) {
	if _, err := lookupDialectSpec(dialect); err != nil {
		return nil, err
	}
	return &DialectFormatter{dialect: dialect}, nil
}

// Format renders query using this formatter's dialect. cfg.Language is
// overridden with the bound dialect regardless of what it was set to,
// so a DialectFormatter always honors its own identity.
func (f *DialectFormatter) Format(query string, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.Language = f.dialect
	return Format(query, &c)
}

// Dialect returns the dialect this formatter was constructed with.
func (f *DialectFormatter) Dialect() Dialect {
	return f.dialect
}
