package sqlformat

import "strconv"

// Params supplies replacement text for PLACEHOLDER tokens. A nil Params
// leaves every placeholder untouched.
type Params interface {
	// Get returns the replacement for a placeholder token and whether one
	// was found. key is the Key already extracted by the tokenizer (the
	// digits of $1, the identifier of :name, or "" for a bare ?).
	Get(tok Token) (string, bool)
}

// PositionalParams substitutes bare "?" and numbered ($1, $2, …)
// placeholders from a flat list, consumed in the order the placeholders
// appear in the query. A numbered placeholder indexes directly into the
// list (1-based); a bare "?" consumes the next unused entry by way of an
// internal cursor carried in paramSubstituter.
type PositionalParams []string

func (p PositionalParams) Get(tok Token) (string, bool) {
	if tok.Key == "" {
		return "", false
	}
	n, err := strconv.Atoi(tok.Key)
	if err != nil || n < 1 || n > len(p) {
		return "", false
	}
	return p[n-1], true
}

// NamedParams substitutes named placeholders (:name, @var, $name) by key.
type NamedParams map[string]string

func (p NamedParams) Get(tok Token) (string, bool) {
	v, ok := p[tok.Key]
	return v, ok
}

// paramSubstituter resolves each placeholder token to its replacement
// text, maintaining the sequential cursor that bare "?" placeholders
// consume from.
type paramSubstituter struct {
	params     Params
	bareCursor int
}

func newParamSubstituter(params Params) *paramSubstituter {
	return &paramSubstituter{params: params}
}

// Substitute returns the text to render for a PLACEHOLDER token: its
// configured replacement, or the placeholder's original source text
// unchanged if no Params were configured at all. A Params value that was
// configured but has no entry for this placeholder is a hard failure
// (MissingParameterError), not a pass-through.
func (ps *paramSubstituter) Substitute(tok Token) (string, error) {
	if ps.params == nil {
		return tok.Value, nil
	}

	if tok.Key == "" {
		// Bare positional placeholder: consume the next entry by position.
		ps.bareCursor++
		if pp, ok := ps.params.(PositionalParams); ok && ps.bareCursor >= 1 && ps.bareCursor <= len(pp) {
			return pp[ps.bareCursor-1], nil
		}
		return "", &MissingParameterError{Key: strconv.Itoa(ps.bareCursor)}
	}

	if v, ok := ps.params.Get(tok); ok {
		return v, nil
	}
	return "", &MissingParameterError{Key: tok.Key}
}
