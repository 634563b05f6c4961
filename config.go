package sqlformat

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// KeywordPosition controls how RESERVED_TOP_LEVEL keywords are aligned.
type KeywordPosition string

const (
	KeywordPositionStandard      KeywordPosition = "standard"
	KeywordPositionTenSpaceLeft  KeywordPosition = "tenSpaceLeft"
	KeywordPositionTenSpaceRight KeywordPosition = "tenSpaceRight"
)

// AliasAsMode controls whether a bare "expr identifier" alias gets a
// synthesized AS, or an explicit AS gets dropped.
type AliasAsMode string

const (
	AliasAsAlways   AliasAsMode = "always"
	AliasAsNever    AliasAsMode = "never"
	AliasAsSelect   AliasAsMode = "select"
	AliasAsExplicit AliasAsMode = "explicit"
)

// CommaPositionMode controls where list-item commas are emitted.
type CommaPositionMode string

const (
	CommaPositionAfter   CommaPositionMode = "after"
	CommaPositionBefore  CommaPositionMode = "before"
	CommaPositionTabular CommaPositionMode = "tabular"
)

// ParenOptions governs whether parens that did not qualify for inline
// rendering still get a newline immediately after opening / before
// closing.
type ParenOptions struct {
	OpenParenNewline  bool
	CloseParenNewline bool
}

// NewlineMode is a small sum type over the newline field's raw forms,
// which accept the literal strings "always"/"never"/"lineWidth" or a
// positive integer threshold. Kind discriminates; Count only matters
// when Kind == NewlineKindAfterCount.
type NewlineMode struct {
	Kind  string
	Count int
}

const (
	NewlineKindAlways     = "always"
	NewlineKindNever      = "never"
	NewlineKindLineWidth  = "lineWidth"
	NewlineKindAfterCount = "afterCount"
)

func NewlineAlways() NewlineMode    { return NewlineMode{Kind: NewlineKindAlways} }
func NewlineNever() NewlineMode     { return NewlineMode{Kind: NewlineKindNever} }
func NewlineLineWidth() NewlineMode { return NewlineMode{Kind: NewlineKindLineWidth} }

func NewlineAfterCount(n int) NewlineMode {
	return NewlineMode{Kind: NewlineKindAfterCount, Count: n}
}

// normalizeNewline maps the newline field's raw forms (string keyword, or
// non-negative integer with zero meaning "always") onto NewlineMode,
// returning InvalidNewlineError for a negative integer.
func normalizeNewline(v any) (NewlineMode, error) {
	switch t := v.(type) {
	case NewlineMode:
		return t, nil
	case string:
		switch t {
		case NewlineKindAlways, "":
			return NewlineAlways(), nil
		case NewlineKindNever:
			return NewlineNever(), nil
		case NewlineKindLineWidth:
			return NewlineLineWidth(), nil
		default:
			if n, err := strconv.Atoi(t); err == nil {
				return normalizeNewlineInt(n)
			}
			return NewlineAlways(), nil
		}
	case int:
		return normalizeNewlineInt(t)
	case float64:
		return normalizeNewlineInt(int(t))
	default:
		return NewlineAlways(), nil
	}
}

func normalizeNewlineInt(n int) (NewlineMode, error) {
	if n < 0 {
		return NewlineMode{}, &InvalidNewlineError{Value: n}
	}
	if n == 0 {
		return NewlineAlways(), nil
	}
	return NewlineAfterCount(n), nil
}

// Config holds every formatting option Format accepts. All fields are
// optional; a nil *Config passed to Format is equivalent to
// DefaultConfig().
type Config struct {
	Language Dialect

	Indent    string
	Uppercase bool

	KeywordPosition KeywordPosition
	Newline         NewlineMode

	BreakBeforeBooleanOperator bool

	AliasAs       AliasAsMode
	TabulateAlias bool
	CommaPosition CommaPositionMode

	ParenOptions ParenOptions

	LineWidth           int
	LinesBetweenQueries int

	DenseOperators   bool
	SemicolonNewline bool

	Params Params

	// Reporter receives non-fatal warnings (e.g. a non-positive LineWidth
	// being reset). Nil means the package-level default reporter.
	Reporter WarningReporter

	// trailingNewline is internal-only, kept unexported and outside the
	// public defaulting/decoding surface; Format defaults it to false.
	trailingNewline bool
}

// DefaultConfig returns the package's documented default options.
func DefaultConfig() *Config {
	return &Config{
		Language:                   DialectSQL,
		Indent:                     "  ",
		Uppercase:                  true,
		KeywordPosition:            KeywordPositionStandard,
		Newline:                    NewlineAlways(),
		BreakBeforeBooleanOperator: true,
		AliasAs:                    AliasAsSelect,
		TabulateAlias:              false,
		CommaPosition:              CommaPositionAfter,
		ParenOptions:               ParenOptions{OpenParenNewline: true, CloseParenNewline: true},
		LineWidth:                  50,
		LinesBetweenQueries:        1,
		DenseOperators:             false,
		SemicolonNewline:           false,
	}
}

// applyDefaults performs a shallow merge: every zero-valued string or
// integer field on cfg, and an unset Newline, is filled in from
// DefaultConfig(). Bool fields, ParenOptions included, are left as they
// are, since an explicit false cannot be told apart from an unset one. A
// *Config built by hand (rather than via DecodeConfig) is expected to
// already carry every field it cares about; applyDefaults only rescues
// zero values, which is why it is idempotent to call twice.
func (cfg *Config) applyDefaults() {
	d := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = d.Language
	}
	if cfg.Indent == "" {
		cfg.Indent = d.Indent
	}
	if cfg.KeywordPosition == "" {
		cfg.KeywordPosition = d.KeywordPosition
	}
	if cfg.Newline.Kind == "" {
		cfg.Newline = d.Newline
	}
	if cfg.AliasAs == "" {
		cfg.AliasAs = d.AliasAs
	}
	if cfg.CommaPosition == "" {
		cfg.CommaPosition = d.CommaPosition
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = d.LineWidth
	}
	if cfg.LinesBetweenQueries == 0 {
		cfg.LinesBetweenQueries = d.LinesBetweenQueries
	}
}

// validate enforces a known dialect, a non-negative newline count
// (normalizeNewline already rejects one that came through DecodeConfig;
// this also catches a hand-built NewlineMode), and a positive LineWidth,
// auto-corrected with a warning rather than failing.
func (cfg *Config) validate() error {
	if _, err := lookupDialectSpec(cfg.Language); err != nil {
		return err
	}
	if cfg.Newline.Kind == NewlineKindAfterCount && cfg.Newline.Count < 0 {
		return &InvalidNewlineError{Value: cfg.Newline.Count}
	}
	if cfg.LineWidth <= 0 {
		cfg.reporter().Warnf("lineWidth %d is non-positive, resetting to default", cfg.LineWidth)
		cfg.LineWidth = DefaultConfig().LineWidth
	}
	if cfg.KeywordPosition == KeywordPositionTenSpaceLeft || cfg.KeywordPosition == KeywordPositionTenSpaceRight {
		cfg.Indent = strings.Repeat(" ", 10)
	}
	return nil
}

func (cfg *Config) reporter() WarningReporter {
	if cfg.Reporter != nil {
		return cfg.Reporter
	}
	return defaultReporter()
}

// DecodeConfig starts from DefaultConfig() and decodes a generic map
// (built from CLI flags or a loaded config file) on top of it with
// mapstructure, relying on mapstructure's native behavior of only
// overwriting fields present in the source map to get a shallow merge,
// with parenOptions merged one level deep, for free: a map containing
// only {"parenOptions": {"openParenNewline": false}} never touches
// CloseParenNewline because mapstructure decodes into the
// already-populated struct field by field.
func DecodeConfig(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()
	if len(overrides) == 0 {
		cfg.applyDefaults()
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(newlineHook, paramsHook),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(overrides); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newlineHook normalizes raw override values (the string keywords or
// integers the newline field accepts) into NewlineMode whenever
// mapstructure is about to decode into a NewlineMode field.
var newlineHook = mapstructure.DecodeHookFuncType(func(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(NewlineMode{}) {
		return data, nil
	}
	return normalizeNewline(data)
})

var paramsInterfaceType = reflect.TypeOf((*Params)(nil)).Elem()

// paramsHook lets DecodeConfig's callers pass params as either of two
// loose shapes (an ordered list, or a string-to-string mapping) and
// converts them into whichever concrete Params implementation satisfies
// the Config.Params interface field.
var paramsHook = mapstructure.DecodeHookFuncType(func(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != paramsInterfaceType || data == nil {
		return data, nil
	}
	switch v := data.(type) {
	case []string:
		return PositionalParams(v), nil
	case []any:
		out := make(PositionalParams, len(v))
		for i, e := range v {
			out[i] = fmt.Sprint(e)
		}
		return out, nil
	case map[string]string:
		return NamedParams(v), nil
	case map[string]any:
		out := make(NamedParams, len(v))
		for k, e := range v {
			out[k] = fmt.Sprint(e)
		}
		return out, nil
	case Params:
		return v, nil
	default:
		return data, nil
	}
})
