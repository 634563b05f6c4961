package sqlformat

import (
	"sort"
	"strings"
	"sync"

	re2 "github.com/wasilibs/go-re2"
)

// compiledDialect caches the regexes derived from a DialectSpec: the
// longest-match keyword alternations for the four reserved-word classes,
// and the placeholder/dollar-quote patterns. Built once per dialect,
// lazily, and shared by every Format call for that dialect — Design
// Notes §9 is explicit that a systems-language port must not rebuild
// these per call.
type compiledDialect struct {
	spec *DialectSpec

	topLevelRe         *re2.Regexp
	topLevelNoIndentRe *re2.Regexp
	newlineRe          *re2.Regexp
	plainRe            *re2.Regexp

	numberedPlaceholderRe *re2.Regexp
	namedPlaceholderRe    *re2.Regexp
	dollarQuoteOpenerRe   *re2.Regexp
	numberRe              *re2.Regexp
}

var (
	registryMu    sync.Mutex
	registryOnce  = map[Dialect]*sync.Once{}
	registryCache = map[Dialect]*compiledDialect{}
)

func getCompiledDialect(d Dialect) (*compiledDialect, error) {
	spec, err := lookupDialectSpec(d)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	once, ok := registryOnce[d]
	if !ok {
		once = &sync.Once{}
		registryOnce[d] = once
	}
	registryMu.Unlock()

	once.Do(func() {
		cd := buildCompiledDialect(spec)
		registryMu.Lock()
		registryCache[d] = cd
		registryMu.Unlock()
	})

	registryMu.Lock()
	cd := registryCache[d]
	registryMu.Unlock()
	return cd, nil
}

func buildCompiledDialect(spec *DialectSpec) *compiledDialect {
	return &compiledDialect{
		spec:                  spec,
		topLevelRe:            buildKeywordRegexp(spec.ReservedTopLevel),
		topLevelNoIndentRe:    buildKeywordRegexp(spec.ReservedTopLevelNoIndent),
		newlineRe:             buildKeywordRegexp(spec.ReservedNewline),
		plainRe:               buildKeywordRegexp(spec.ReservedPlain),
		numberedPlaceholderRe: buildNumberedPlaceholderRegexp(spec),
		namedPlaceholderRe:    buildNamedPlaceholderRegexp(spec),
		dollarQuoteOpenerRe:   re2.MustCompile(`^(\$[A-Za-z0-9_]*\$)`),
		numberRe:              re2.MustCompile(`^[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?|^\.[0-9]+`),
	}
}

// buildKeywordRegexp compiles a single alternation, case-insensitive,
// longest-word-first (so multi-word keywords like "GROUP BY" are tried
// before any single-word keyword that happens to be a prefix of them),
// internal whitespace within a multi-word keyword matched as \s+ so
// "GROUP   BY" and "GROUP\nBY" both match, and a trailing boundary
// assertion so "SELECTED" is never mistaken for "SELECT".
func buildKeywordRegexp(words []string) *re2.Regexp {
	if len(words) == 0 {
		// A regexp that can never match anything.
		return re2.MustCompile(`^(?:$.)`)
	}
	sorted := cloneStrings(words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = strings.ReplaceAll(quoteMetaASCII(w), ` `, `\s+`)
	}
	pattern := `(?i)^(` + strings.Join(parts, "|") + `)(?:$|[^A-Za-z0-9_])`
	return re2.MustCompile(pattern)
}

func buildNumberedPlaceholderRegexp(spec *DialectSpec) *re2.Regexp {
	if len(spec.PlaceholderNumberedPrefixes) == 0 {
		return nil
	}
	prefixClass := runeClass(spec.PlaceholderNumberedPrefixes)
	return re2.MustCompile(`^[` + prefixClass + `][0-9]+`)
}

func buildNamedPlaceholderRegexp(spec *DialectSpec) *re2.Regexp {
	if len(spec.PlaceholderNamedPrefixes) == 0 {
		return nil
	}
	prefixClass := runeClass(spec.PlaceholderNamedPrefixes)
	return re2.MustCompile(`^[` + prefixClass + `]([A-Za-z_][A-Za-z0-9_]*)`)
}

func runeClass(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if strings.ContainsRune(`\^]`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quoteMetaASCII escapes regex metacharacters in a keyword. Keywords are
// plain ASCII (SQL reserved words), so a small explicit escaper keeps this
// file's only import needs limited to go-re2 plus stdlib strings/sort/sync.
func quoteMetaASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
