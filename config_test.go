package sqlformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DialectSQL, cfg.Language)
	assert.Equal(t, "  ", cfg.Indent)
	assert.True(t, cfg.Uppercase)
	assert.Equal(t, KeywordPositionStandard, cfg.KeywordPosition)
	assert.Equal(t, NewlineAlways(), cfg.Newline)
	assert.True(t, cfg.BreakBeforeBooleanOperator)
	assert.Equal(t, AliasAsSelect, cfg.AliasAs)
	assert.Equal(t, CommaPositionAfter, cfg.CommaPosition)
	assert.True(t, cfg.ParenOptions.OpenParenNewline)
	assert.True(t, cfg.ParenOptions.CloseParenNewline)
	assert.Equal(t, 50, cfg.LineWidth)
	assert.Equal(t, 1, cfg.LinesBetweenQueries)
}

func TestApplyDefaultsFillsOnlyZeroFields(t *testing.T) {
	cfg := &Config{
		Language:  DialectMySQL,
		Uppercase: false,
	}
	cfg.applyDefaults()

	assert.Equal(t, DialectMySQL, cfg.Language, "explicit field must survive")
	assert.Equal(t, "  ", cfg.Indent, "unset field must be filled from defaults")
	assert.Equal(t, AliasAsSelect, cfg.AliasAs)
	assert.Equal(t, 50, cfg.LineWidth)
	assert.False(t, cfg.Uppercase, "explicit false must not be overwritten")
}

func TestApplyDefaultsIsIdempotent(t *testing.T) {
	cfg := &Config{Language: DialectPostgreSQL}
	cfg.applyDefaults()
	first := *cfg
	cfg.applyDefaults()
	assert.Equal(t, first, *cfg)
}

func TestValidateRejectsUnknownDialect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = Dialect("not-a-real-dialect")
	err := cfg.validate()
	require.Error(t, err)
}

func TestValidateResetsNonPositiveLineWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWidth = -5
	cfg.Reporter = discardReporter{}
	err := cfg.validate()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LineWidth, cfg.LineWidth)
}

func TestValidateForcesTenSpaceIndent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeywordPosition = KeywordPositionTenSpaceLeft
	cfg.Reporter = discardReporter{}
	require.NoError(t, cfg.validate())
	assert.Equal(t, 10, len(cfg.Indent))
}

func TestDecodeConfigEmptyOverridesReturnsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfigAppliesScalarOverrides(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{
		"language":  "mysql",
		"uppercase": false,
		"lineWidth": 80,
	})
	require.NoError(t, err)
	assert.Equal(t, DialectMySQL, cfg.Language)
	assert.False(t, cfg.Uppercase)
	assert.Equal(t, 80, cfg.LineWidth)
}

func TestDecodeConfigMergesParenOptionsOneLevelDeep(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{
		"parenOptions": map[string]any{
			"openParenNewline": false,
		},
	})
	require.NoError(t, err)
	assert.False(t, cfg.ParenOptions.OpenParenNewline)
	assert.True(t, cfg.ParenOptions.CloseParenNewline, "unset sibling field must keep its default")
}

func TestDecodeConfigNewlineHookAcceptsKeywordsAndIntegers(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{"newline": "never"})
	require.NoError(t, err)
	assert.Equal(t, NewlineNever(), cfg.Newline)

	cfg, err = DecodeConfig(map[string]any{"newline": 3})
	require.NoError(t, err)
	assert.Equal(t, NewlineAfterCount(3), cfg.Newline)

	_, err = DecodeConfig(map[string]any{"newline": -1})
	require.Error(t, err)
	var invalid *InvalidNewlineError
	assert.ErrorAs(t, err, &invalid)
}

func TestDecodeConfigParamsHookAcceptsListAndMap(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{"params": []any{"'alice'", 42}})
	require.NoError(t, err)
	pp, ok := cfg.Params.(PositionalParams)
	require.True(t, ok)
	assert.Equal(t, PositionalParams{"'alice'", "42"}, pp)

	cfg, err = DecodeConfig(map[string]any{"params": map[string]any{"name": "'alice'"}})
	require.NoError(t, err)
	np, ok := cfg.Params.(NamedParams)
	require.True(t, ok)
	assert.Equal(t, NamedParams{"name": "'alice'"}, np)
}
