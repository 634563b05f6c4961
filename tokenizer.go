package sqlformat

// Tokenize splits raw SQL into an ordered token stream for the given
// dialect. Every byte of input is consumed by exactly one scan step; the
// punctuation fallback in scanOne guarantees progress, so a
// TokenizerStuckError can only occur if that guarantee is ever broken by a
// future change to the lexer list.
func Tokenize(input string, dialect Dialect) ([]Token, error) {
	cd, err := getCompiledDialect(dialect)
	if err != nil {
		return nil, err
	}
	return tokenizeWithDialect(input, cd)
}

func tokenizeWithDialect(input string, cd *compiledDialect) ([]Token, error) {
	s := newScanner([]rune(input))
	override := dialectOverrides[cd.spec.Name]

	var tokens []Token
	for {
		ws := scanWhitespace(s)
		if s.eof() {
			break
		}
		start := s.pos
		tok, ok := scanOne(s, cd)
		if !ok || s.pos == start {
			return nil, &TokenizerStuckError{Offset: start}
		}
		tok.WhitespaceBefore = ws
		tok.Offset = start
		if override != nil {
			tok = override(tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func scanWhitespace(s *scanner) string {
	start := s.pos
	for isWhitespace(s.peek()) {
		s.advance()
	}
	return string(s.input[start:s.pos])
}

// scanOne tries each lexer in the fixed priority order: line comment,
// block comment, quoted string, quoted identifier, open paren, close
// paren, placeholder, number, reserved-top-level,
// reserved-top-level-no-indent, reserved-newline, reserved plain,
// word/identifier, operator, single-character punctuation fallback. The
// first lexer that reports a match wins.
func scanOne(s *scanner, cd *compiledDialect) (Token, bool) {
	if s.eof() {
		return Token{}, false
	}

	if tok, ok := scanLineComment(s, cd.spec); ok {
		return tok, true
	}
	if tok, ok := scanBlockComment(s, cd.spec); ok {
		return tok, true
	}
	if tok, ok := scanStringLiteral(s, cd); ok {
		return tok, true
	}
	if tok, ok := scanQuotedIdentifier(s, cd.spec); ok {
		return tok, true
	}
	if s.peek() == '(' {
		s.advance()
		return Token{Type: TokenOpenParen, Value: "("}, true
	}
	if s.peek() == ')' {
		s.advance()
		return Token{Type: TokenCloseParen, Value: ")"}, true
	}
	if tok, ok := scanPlaceholder(s, cd); ok {
		return tok, true
	}
	if tok, ok := scanNumber(s, cd); ok {
		return tok, true
	}
	if tok, ok := scanReservedClass(s, cd.topLevelRe, TokenReservedTopLevel); ok {
		return tok, true
	}
	if tok, ok := scanReservedClass(s, cd.topLevelNoIndentRe, TokenReservedTopLevelNoIndent); ok {
		return tok, true
	}
	if tok, ok := scanReservedClass(s, cd.newlineRe, TokenReservedNewline); ok {
		return tok, true
	}
	if tok, ok := scanReservedClass(s, cd.plainRe, TokenReserved); ok {
		return tok, true
	}
	if tok, ok := scanWord(s, cd.spec); ok {
		return tok, true
	}
	if tok, ok := scanOperator(s, cd.spec); ok {
		return tok, true
	}
	return Token{Type: TokenPunctuation, Value: string(s.advance())}, true
}

func scanLineComment(s *scanner, spec *DialectSpec) (Token, bool) {
	for _, prefix := range spec.LineCommentPrefixes {
		if !hasPrefixAt(s, prefix) {
			continue
		}
		start := s.pos
		for s.peek() != '\n' && !s.eof() {
			s.advance()
		}
		return Token{Type: TokenLineComment, Value: string(s.input[start:s.pos])}, true
	}
	return Token{}, false
}

// scanBlockComment consumes a delimited comment, tracking nesting depth
// only when the dialect supports nested block comments; otherwise the
// first close delimiter ends it regardless of how many opens preceded it.
func scanBlockComment(s *scanner, spec *DialectSpec) (Token, bool) {
	if spec.BlockCommentOpen == "" || !hasPrefixAt(s, spec.BlockCommentOpen) {
		return Token{}, false
	}
	start := s.pos
	openLen := len([]rune(spec.BlockCommentOpen))
	closeLen := len([]rune(spec.BlockCommentClose))
	advanceN(s, openLen)
	depth := 1
	for {
		if s.eof() {
			break
		}
		if spec.SupportsNestedBlockComments && hasPrefixAt(s, spec.BlockCommentOpen) {
			advanceN(s, openLen)
			depth++
			continue
		}
		if hasPrefixAt(s, spec.BlockCommentClose) {
			advanceN(s, closeLen)
			depth--
			if depth <= 0 {
				break
			}
			continue
		}
		s.advance()
	}
	return Token{Type: TokenBlockComment, Value: string(s.input[start:s.pos])}, true
}

// scanStringLiteral tries a letter-prefixed string literal (N'...', E'...'),
// then a plain quoted string, then, for dialects that support it, a
// dollar-quoted string.
func scanStringLiteral(s *scanner, cd *compiledDialect) (Token, bool) {
	spec := cd.spec
	if tok, ok := scanPrefixedString(s, spec); ok {
		return tok, true
	}
	ch := s.peek()
	for _, qs := range spec.StringQuotes {
		if ch == qs.Open {
			start := s.pos
			scanQuoted(s, qs)
			return Token{Type: TokenString, Value: string(s.input[start:s.pos])}, true
		}
	}
	if spec.SupportsDollarQuotedStrings {
		if tag, ok := matchDollarQuoteOpener(cd, s); ok {
			start := s.pos
			scanDollarQuotedString(s, tag)
			return Token{Type: TokenString, Value: string(s.input[start:s.pos])}, true
		}
	}
	return Token{}, false
}

func scanPrefixedString(s *scanner, spec *DialectSpec) (Token, bool) {
	for _, p := range spec.StringPrefixes {
		pr := []rune(p)
		n := len(pr)
		if s.pos+n >= len(s.input) || !equalFoldRunes(s.input[s.pos:s.pos+n], pr) {
			continue
		}
		next := s.input[s.pos+n]
		for _, qs := range spec.StringQuotes {
			if next == qs.Open {
				start := s.pos
				advanceN(s, n)
				scanQuoted(s, qs)
				return Token{Type: TokenString, Value: string(s.input[start:s.pos])}, true
			}
		}
	}
	return Token{}, false
}

// scanQuoted consumes a quoted run starting at the current position, which
// must hold qs.Open, through its matching close, honoring the dialect's
// escape convention. Unterminated input is accepted best-effort through
// EOF: the tokenizer never rejects malformed input outright.
func scanQuoted(s *scanner, qs QuoteStyle) {
	s.advance() // opening delimiter
	for {
		ch := s.advance()
		if ch == eof {
			return
		}
		if qs.BackslashEscape && ch == '\\' {
			if !s.eof() {
				s.advance()
			}
			continue
		}
		if ch == qs.Close {
			if qs.DoubledEscape && s.peek() == qs.Close {
				s.advance()
				continue
			}
			return
		}
	}
}

func matchDollarQuoteOpener(cd *compiledDialect, s *scanner) (string, bool) {
	m := cd.dollarQuoteOpenerRe.FindStringSubmatch(s.remaining())
	if m == nil {
		return "", false
	}
	return m[1], true
}

func scanDollarQuotedString(s *scanner, tag string) {
	tagRunes := []rune(tag)
	advanceN(s, len(tagRunes))
	for {
		if s.pos+len(tagRunes) > len(s.input) {
			for !s.eof() {
				s.advance()
			}
			return
		}
		if equalFoldRunes(s.input[s.pos:s.pos+len(tagRunes)], tagRunes) {
			advanceN(s, len(tagRunes))
			return
		}
		s.advance()
	}
}

func scanQuotedIdentifier(s *scanner, spec *DialectSpec) (Token, bool) {
	ch := s.peek()
	for _, qs := range spec.IdentifierQuotes {
		if ch == qs.Open {
			start := s.pos
			scanQuoted(s, qs)
			return Token{Type: TokenWord, Value: string(s.input[start:s.pos])}, true
		}
	}
	return Token{}, false
}

// scanPlaceholder tries numbered ($1), then named (:name, @var), then bare
// positional (?), in that order — a rune listed as both a numbered and a
// named prefix is only ambiguous when followed by digits, which the
// numbered branch already claims first.
func scanPlaceholder(s *scanner, cd *compiledDialect) (Token, bool) {
	spec := cd.spec
	remaining := s.remaining()

	if cd.numberedPlaceholderRe != nil {
		if m := cd.numberedPlaceholderRe.FindString(remaining); m != "" {
			value := consumeLiteral(s, m)
			return Token{Type: TokenPlaceholder, Value: value, Key: value[1:]}, true
		}
	}
	if cd.namedPlaceholderRe != nil {
		if loc := cd.namedPlaceholderRe.FindStringSubmatchIndex(remaining); loc != nil {
			value := consumeLiteral(s, remaining[loc[0]:loc[1]])
			return Token{Type: TokenPlaceholder, Value: value, Key: remaining[loc[2]:loc[3]]}, true
		}
	}
	if spec.BarePositionalMark != 0 && s.peek() == spec.BarePositionalMark {
		return Token{Type: TokenPlaceholder, Value: string(s.advance())}, true
	}
	return Token{}, false
}

func consumeLiteral(s *scanner, literal string) string {
	advanceN(s, len([]rune(literal)))
	return literal
}

func scanNumber(s *scanner, cd *compiledDialect) (Token, bool) {
	m := cd.numberRe.FindString(s.remaining())
	if m == "" {
		return Token{}, false
	}
	return Token{Type: TokenNumber, Value: consumeLiteral(s, m)}, true
}

// reservedMatcher is the subset of *re2.Regexp scanReservedClass needs;
// kept narrow so tests can exercise the dispatch logic against a fake.
type reservedMatcher interface {
	FindStringSubmatchIndex(string) []int
}

func scanReservedClass(s *scanner, re reservedMatcher, tt TokenType) (Token, bool) {
	remaining := s.remaining()
	loc := re.FindStringSubmatchIndex(remaining)
	if loc == nil {
		return Token{}, false
	}
	value := consumeLiteral(s, remaining[loc[2]:loc[3]])
	return Token{Type: tt, Value: value}, true
}

func isWordStart(ch rune, spec *DialectSpec) bool {
	if isLetter(ch) {
		return true
	}
	return containsRuneSlice(spec.ExtraWordLeadChars, ch)
}

func isWordContinue(ch rune, spec *DialectSpec) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	return containsRuneSlice(spec.ExtraWordContinueChars, ch)
}

func containsRuneSlice(runes []rune, ch rune) bool {
	for _, r := range runes {
		if r == ch {
			return true
		}
	}
	return false
}

func scanWord(s *scanner, spec *DialectSpec) (Token, bool) {
	if !isWordStart(s.peek(), spec) {
		return Token{}, false
	}
	start := s.pos
	s.advance()
	for isWordContinue(s.peek(), spec) {
		s.advance()
	}
	return Token{Type: TokenWord, Value: string(s.input[start:s.pos])}, true
}

func scanOperator(s *scanner, spec *DialectSpec) (Token, bool) {
	if !isOperatorChar(s.peek(), spec) {
		return Token{}, false
	}
	start := s.pos
	for isOperatorChar(s.peek(), spec) {
		s.advance()
	}
	return Token{Type: TokenOperator, Value: string(s.input[start:s.pos])}, true
}

func hasPrefixAt(s *scanner, prefix string) bool {
	pr := []rune(prefix)
	if s.pos+len(pr) > len(s.input) {
		return false
	}
	for i, r := range pr {
		if s.input[s.pos+i] != r {
			return false
		}
	}
	return true
}

func equalFoldRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch rune) bool {
	return ch != eof && ((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func advanceN(s *scanner, n int) {
	for i := 0; i < n; i++ {
		if s.advance() == eof {
			return
		}
	}
}
