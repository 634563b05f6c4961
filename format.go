package sqlformat

import "fmt"

// Format renders query according to cfg, or DefaultConfig() if cfg is nil.
// It is synchronous, holds no process-wide mutable state of its own, and
// is safe to call concurrently from independent goroutines.
//
// Any unexpected internal invariant violation is recovered at this single
// boundary and turned into a returned error rather than letting a panic
// escape to the caller.
func Format(query string, cfg *Config) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("sqlformat: internal error: %v", r)
		}
	}()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()
	if verr := cfg.validate(); verr != nil {
		return "", verr
	}

	cd, derr := getCompiledDialect(cfg.Language)
	if derr != nil {
		return "", derr
	}

	tokens, terr := tokenizeWithDialect(query, cd)
	if terr != nil {
		return "", terr
	}

	state := newFormatterState(tokens, cfg)
	return state.run()
}
