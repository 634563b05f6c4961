package sqlformat

import "fmt"

// Five error kinds callers can match on with errors.As. All are returned
// values; Format's only panic/recover boundary (format.go) converts
// unexpected internal invariant violations into a generic error rather
// than crashing the caller.

// InvalidQueryArgumentError reports that the query argument could not be
// used as SQL source text. Format's signature is statically typed, so this
// only arises from the CLI/config decoding layer.
type InvalidQueryArgumentError struct{}

func (e *InvalidQueryArgumentError) Error() string {
	return "sqlformat: query argument must be a string"
}

// UnsupportedDialectError reports an unknown Config.Language value.
type UnsupportedDialectError struct {
	Language string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("sqlformat: unsupported dialect %q", e.Language)
}

// InvalidNewlineError reports a negative Config.Newline integer value.
type InvalidNewlineError struct {
	Value int
}

func (e *InvalidNewlineError) Error() string {
	return fmt.Sprintf("sqlformat: invalid newline value %d, must be non-negative", e.Value)
}

// TokenizerStuckError reports that no lexer could make progress at Offset.
type TokenizerStuckError struct {
	Offset int
}

func (e *TokenizerStuckError) Error() string {
	return fmt.Sprintf("sqlformat: tokenizer stuck at offset %d", e.Offset)
}

// MissingParameterError reports a placeholder with no matching entry in
// the configured Params.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("sqlformat: missing parameter %q", e.Key)
}
