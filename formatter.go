package sqlformat

import "strings"

// formatterState is the single-pass walk over a token stream. Every field
// here is created fresh by Format and discarded at return: no state
// crosses calls.
type formatterState struct {
	tokens []Token
	index  int
	cfg    *Config

	indent *indentStack
	inline *inlineBlock
	params *paramSubstituter

	out outputBuffer

	previousReservedToken *Token
	currentClause         string

	// pendingSuppressSpace is set by a dense operator so the very next
	// token's ensureSpace() call skips adding the leading space it would
	// otherwise add, making "a=b" fully dense instead of just "a= b".
	// Moved into activeSuppressSpace at the start of the next dispatch so
	// a handler that never calls ensureSpace (e.g. an open paren) can't
	// leave it stale for a token further down the stream.
	pendingSuppressSpace bool
	activeSuppressSpace  bool

	// aliasColumn is the computed padding width for the current SELECT
	// column list when tabulateAlias is set; recomputed at each
	// RESERVED_TOP_LEVEL that opens a list.
	aliasColumn int

	// currentListItems is the comma-separated item count of the list
	// opened by the most recent RESERVED_TOP_LEVEL, consulted by
	// cfg.Newline's afterCount mode.
	currentListItems int
}

func newFormatterState(tokens []Token, cfg *Config) *formatterState {
	return &formatterState{
		tokens: tokens,
		cfg:    cfg,
		indent: newIndentStack(cfg.Indent),
		inline: &inlineBlock{},
		params: newParamSubstituter(cfg.Params),
	}
}

// run walks every token and returns the finished, trimmed output, or the
// first error a dispatch rule reports (currently only a missing
// placeholder parameter can fail a token). The very first RESERVED_TOP_LEVEL
// token always opens with an AddNewline against an empty buffer, so the
// untrimmed result carries a leading newline; strip leading and trailing
// whitespace the same way before deciding whether to re-append a single
// trailing newline.
func (st *formatterState) run() (string, error) {
	for st.index = 0; st.index < len(st.tokens); st.index++ {
		if err := st.dispatch(st.tokens[st.index]); err != nil {
			return "", err
		}
	}
	st.out.TrimTrailingWhitespace()
	result := strings.TrimLeft(st.out.String(), " \t\r\n")
	if st.cfg.trailingNewline {
		result += "\n"
	}
	return result, nil
}

func (st *formatterState) current() Token { return st.tokens[st.index] }

func (st *formatterState) prevToken() (Token, bool) {
	if st.index == 0 {
		return Token{}, false
	}
	return st.tokens[st.index-1], true
}

func (st *formatterState) tokenAt(offset int) (Token, bool) {
	i := st.index + offset
	if i < 0 || i >= len(st.tokens) {
		return Token{}, false
	}
	return st.tokens[i], true
}

// ensureSpace is EnsureSpace with one override: it honors a pending
// suppression left by a dense operator on the previous token.
func (st *formatterState) ensureSpace() {
	if st.activeSuppressSpace {
		st.activeSuppressSpace = false
		return
	}
	st.out.EnsureSpace()
}

func (st *formatterState) renderKeyword(value string) string {
	v := equalizeWhitespace(value)
	if st.cfg.Uppercase {
		v = strings.ToUpper(v)
	}
	return v
}

func (st *formatterState) dispatch(tok Token) error {
	st.activeSuppressSpace = st.pendingSuppressSpace
	st.pendingSuppressSpace = false
	switch tok.Type {
	case TokenLineComment:
		st.emitLineComment(tok)
	case TokenBlockComment:
		st.emitBlockComment(tok)
	case TokenReservedTopLevel:
		st.emitReservedTopLevel(tok)
	case TokenReservedTopLevelNoIndent:
		st.emitReservedTopLevelNoIndent(tok)
	case TokenReservedNewline:
		st.emitReservedNewline(tok)
	case TokenReserved:
		st.emitReserved(tok)
	case TokenOpenParen:
		st.emitOpenParen(tok)
	case TokenCloseParen:
		st.emitCloseParen(tok)
	case TokenPlaceholder:
		return st.emitPlaceholder(tok)
	case TokenPunctuation:
		st.emitPunctuation(tok)
	case TokenOperator:
		st.emitOperator(tok)
	default: // TokenWord, TokenString, TokenNumber
		st.emitDefault(tok)
	}
	return nil
}

func (st *formatterState) emitLineComment(tok Token) {
	st.out.EnsureSpace()
	st.out.WriteString(tok.Value)
	st.out.AddNewline(st.indent.GetIndent())
}

// emitBlockComment re-indents every inner line of a multi-line comment so
// it lines up under the current indent, the way a reader would expect a
// block comment spanning several source lines to be reflowed.
func (st *formatterState) emitBlockComment(tok Token) {
	st.out.AddNewline(st.indent.GetIndent())
	lines := strings.Split(tok.Value, "\n")
	for i, line := range lines {
		if i == 0 {
			st.out.WriteString(line)
			continue
		}
		st.out.WriteString("\n")
		st.out.WriteString(st.indent.GetIndent())
		st.out.WriteString(" ")
		st.out.WriteString(strings.TrimLeft(line, " \t"))
	}
	st.out.AddNewline(st.indent.GetIndent())
}

func (st *formatterState) emitReservedTopLevel(tok Token) {
	st.indent.DecreaseTopLevel()
	st.out.AddNewline(st.indent.GetIndent())
	st.indent.IncreaseTopLevel()
	st.writeTopLevelKeyword(tok)
	st.currentClause = strings.ToUpper(equalizeWhitespace(tok.Value))
	st.aliasColumn = computeAliasColumn(st.tokens, st.index+1, st.cfg)
	st.currentListItems = countListItems(st.tokens, st.index+1)
	st.latchReserved(tok)
	st.out.AddNewline(st.indent.GetIndent())
}

func (st *formatterState) emitReservedTopLevelNoIndent(tok Token) {
	st.indent.DecreaseTopLevel()
	st.out.AddNewline(st.indent.GetIndent())
	st.writeTopLevelKeyword(tok)
	st.latchReserved(tok)
	st.out.AddNewline(st.indent.GetIndent())
}

// writeTopLevelKeyword honors keywordPosition: "standard" emits the
// keyword flush left against the current indent; the tenSpace variants
// pad it within a ten-column field instead (validate() already forced
// Indent to ten spaces for those modes).
func (st *formatterState) writeTopLevelKeyword(tok Token) {
	kw := st.renderKeyword(tok.Value)
	switch st.cfg.KeywordPosition {
	case KeywordPositionTenSpaceLeft:
		st.out.WriteString(padRight(kw, 10))
	case KeywordPositionTenSpaceRight:
		st.out.WriteString(padLeft(kw, 10))
	default:
		st.out.WriteString(kw)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// emitReservedNewline handles the BETWEEN ... AND exception and the
// breakBeforeBooleanOperator toggle: when it's off, AND/OR/XOR render
// like a plain RESERVED token (inline) instead of breaking to a new line.
func (st *formatterState) emitReservedNewline(tok Token) {
	upper := strings.ToUpper(tok.Value)

	if upper == "AND" {
		if back, ok := st.tokenAt(-2); ok && strings.EqualFold(back.Value, "BETWEEN") {
			st.out.EnsureSpace()
			st.out.WriteString(st.renderKeyword(tok.Value))
			st.out.WriteString(" ")
			st.latchReserved(tok)
			return
		}
	}

	isBooleanOp := upper == "AND" || upper == "OR" || upper == "XOR"
	if isBooleanOp && !st.cfg.BreakBeforeBooleanOperator {
		st.emitReserved(tok)
		return
	}

	st.out.AddNewline(st.indent.GetIndent())
	st.out.WriteString(st.renderKeyword(tok.Value))
	st.out.WriteString(" ")
	st.latchReserved(tok)
}

func (st *formatterState) emitReserved(tok Token) {
	if strings.EqualFold(tok.Value, "AS") {
		st.emitAs(tok)
		return
	}
	st.ensureSpace()
	st.out.WriteString(st.renderKeyword(tok.Value))
	st.out.WriteString(" ")
	st.latchReserved(tok)
}

// emitAs implements the aliasAs rules for an explicit AS in the source:
// "never" drops it everywhere, "select" drops it outside a SELECT clause,
// and "always"/"explicit" keep it. tabulateAlias pads the
// expression before AS out to the current list's computed column width.
func (st *formatterState) emitAs(tok Token) {
	mode := st.cfg.AliasAs
	drop := mode == AliasAsNever || (mode == AliasAsSelect && st.currentClause != "SELECT")
	if drop {
		return
	}
	if st.cfg.TabulateAlias && st.aliasColumn > 0 {
		st.padToAliasColumn()
	}
	st.ensureSpace()
	st.out.WriteString(st.renderKeyword(tok.Value))
	st.out.WriteString(" ")
	st.latchReserved(tok)
}

func (st *formatterState) padToAliasColumn() {
	st.out.TrimTrailingSpaces()
	lastLine := lastLineOf(st.out.String())
	width := len([]rune(lastLine))
	if width < st.aliasColumn {
		st.out.WriteString(strings.Repeat(" ", st.aliasColumn-width))
	}
	st.out.WriteString(" ")
}

func lastLineOf(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// computeAliasColumn pre-scans the list of comma-separated items starting
// at fromIdx (a freshly opened top-level clause) and, when tabulateAlias
// is on, returns the widest pre-AS expression width so every alias in the
// list can be padded to line up. Scanning stops at the next top-level
// keyword, matching the span of one clause's column/item list.
func computeAliasColumn(tokens []Token, fromIdx int, cfg *Config) int {
	if !cfg.TabulateAlias {
		return 0
	}
	best := 0
	width := 0
	depth := 0
	for i := fromIdx; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Type {
		case TokenOpenParen:
			depth++
		case TokenCloseParen:
			depth--
		case TokenReservedTopLevel, TokenReservedTopLevelNoIndent:
			if depth <= 0 {
				if width > best {
					best = width
				}
				return best
			}
		}
		if depth == 0 {
			if t.Type == TokenReserved && strings.EqualFold(t.Value, "AS") {
				if width > best {
					best = width
				}
				width = 0
				continue
			}
			if t.Value == "," {
				width = 0
				continue
			}
		}
		width += len(t.WhitespaceBefore) + len(t.Value)
	}
	if width > best {
		best = width
	}
	return best
}

// countListItems counts the comma-separated items in the list opened at
// fromIdx (a freshly opened top-level clause), stopping at the next
// top-level keyword the same way computeAliasColumn does. Consulted by
// cfg.Newline's afterCount mode to decide whether a list is long enough
// to break.
func countListItems(tokens []Token, fromIdx int) int {
	items := 1
	depth := 0
	for i := fromIdx; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Type {
		case TokenOpenParen:
			depth++
		case TokenCloseParen:
			depth--
		case TokenReservedTopLevel, TokenReservedTopLevelNoIndent:
			if depth <= 0 {
				return items
			}
		}
		if depth == 0 && t.Value == "," {
			items++
		}
	}
	return items
}

func (st *formatterState) emitOpenParen(tok Token) {
	prev, hasPrev := st.prevToken()
	if tok.WhitespaceBefore == "" && hasPrev &&
		prev.Type != TokenOpenParen && prev.Type != TokenLineComment && prev.Type != TokenOperator {
		st.out.TrimTrailingSpaces()
	}
	st.out.WriteString("(")

	if st.inline.TryActivate(st.tokens, st.index, st.cfg.LineWidth-2) {
		return
	}
	st.indent.IncreaseBlockLevel()
	if st.cfg.ParenOptions.OpenParenNewline {
		st.out.AddNewline(st.indent.GetIndent())
	}
}

func (st *formatterState) emitCloseParen(tok Token) {
	if st.inline.IsActive() {
		st.inline.End()
		st.out.WriteString(")")
		st.out.WriteString(" ")
		return
	}
	st.indent.DecreaseBlockLevel()
	if st.cfg.ParenOptions.CloseParenNewline {
		st.out.AddNewline(st.indent.GetIndent())
	} else {
		st.out.EnsureSpace()
	}
	st.out.WriteString(")")
	st.out.WriteString(" ")
}

func (st *formatterState) emitPlaceholder(tok Token) error {
	st.ensureSpace()
	v, err := st.params.Substitute(tok)
	if err != nil {
		return err
	}
	st.out.WriteString(v)
	st.out.WriteString(" ")
	return nil
}

func (st *formatterState) emitOperator(tok Token) {
	if st.cfg.DenseOperators {
		st.out.TrimTrailingSpaces()
		st.out.WriteString(tok.Value)
		st.pendingSuppressSpace = true
		return
	}
	st.emitDefault(tok)
}

func (st *formatterState) emitPunctuation(tok Token) {
	switch tok.Value {
	case ",":
		st.emitComma(tok)
	case ":":
		st.ensureSpace()
		st.out.WriteString(":")
	case ".":
		st.out.TrimTrailingSpaces()
		st.out.WriteString(".")
	case ";":
		st.emitSemicolon(tok)
	case "[":
		st.ensureSpace()
		st.out.WriteString("[")
	case "]":
		st.out.WriteString("]")
		st.out.WriteString(" ")
	default:
		st.emitDefault(tok)
	}
}

func (st *formatterState) emitComma(tok Token) {
	switch st.cfg.CommaPosition {
	case CommaPositionBefore, CommaPositionTabular:
		st.out.TrimTrailingSpaces()
		st.out.AddNewline(st.indent.GetIndent())
		st.placeCommaAtLineStart()
	default:
		st.out.TrimTrailingSpaces()
		st.out.WriteString(",")
		st.out.WriteString(" ")
		if st.inline.IsActive() {
			return
		}
		if st.previousReservedToken != nil && strings.EqualFold(st.previousReservedToken.Value, "LIMIT") {
			return
		}
		if st.shouldBreakAfterComma() {
			st.out.AddNewline(st.indent.GetIndent())
		}
	}
}

// shouldBreakAfterComma applies cfg.Newline to the default (non-before,
// non-tabular) comma rule: "always" keeps every list item on its own
// line (the long-standing default behavior), "never" keeps the whole
// list inline, "lineWidth" only breaks once the current line has grown
// past cfg.LineWidth, and a positive afterCount N only breaks lists with
// more than N items.
func (st *formatterState) shouldBreakAfterComma() bool {
	switch st.cfg.Newline.Kind {
	case NewlineKindNever:
		return false
	case NewlineKindLineWidth:
		return st.out.CurrentLineLength() > st.cfg.LineWidth
	case NewlineKindAfterCount:
		return st.currentListItems > st.cfg.Newline.Count
	default: // always
		return true
	}
}

// placeCommaAtLineStart overwrites the last character of the indent
// AddNewline just appended with a comma, so "before"/"tabular" lists
// render as:
//
//	SELECT
//	  a
//	 , b
//
// with the comma in the column one character to the left of the first
// item (indent width minus one), and each later item one column to the
// right of the first. "tabular" renders exactly like "before".
func (st *formatterState) placeCommaAtLineStart() {
	s := st.out.String()
	if n := len(s); n > 0 && s[n-1] == ' ' {
		st.out.buf = st.out.buf[:n-1]
		st.out.WriteString(",")
	} else {
		st.out.WriteString(",")
	}
	st.out.WriteString(" ")
}

func (st *formatterState) emitSemicolon(tok Token) {
	st.indent.Reset()
	if st.cfg.SemicolonNewline {
		st.out.AddNewline(st.indent.GetIndent())
	} else {
		st.out.TrimTrailingSpaces()
	}
	st.out.WriteString(";")
	st.currentClause = ""
	st.previousReservedToken = nil
	for i := 0; i < st.cfg.LinesBetweenQueries; i++ {
		st.out.WriteString("\n")
	}
}

func (st *formatterState) emitDefault(tok Token) {
	if st.maybeSynthesizeAliasAs(tok) {
		return
	}
	st.ensureSpace()
	st.out.WriteString(tok.Value)
	st.out.WriteString(" ")
}

// maybeSynthesizeAliasAs inserts a synthesized "AS" between a bare
// "expr identifier" alias pair when aliasAs calls for it and the source
// didn't already spell one out. Only WORD-after-WORD pairs qualify: an
// identifier immediately following another identifier, with nothing
// (not even an operator) between them, is unambiguously an alias.
func (st *formatterState) maybeSynthesizeAliasAs(tok Token) bool {
	if tok.Type != TokenWord {
		return false
	}
	prev, ok := st.prevToken()
	if !ok || prev.Type != TokenWord {
		return false
	}
	mode := st.cfg.AliasAs
	wantsAs := mode == AliasAsAlways || (mode == AliasAsSelect && st.currentClause == "SELECT")
	if !wantsAs {
		return false
	}
	if st.cfg.TabulateAlias && st.aliasColumn > 0 {
		st.padToAliasColumn()
	} else {
		st.out.EnsureSpace()
	}
	st.out.WriteString(st.renderKeyword("AS"))
	st.out.WriteString(" ")
	st.out.WriteString(tok.Value)
	st.out.WriteString(" ")
	return true
}

func (st *formatterState) latchReserved(tok Token) {
	t := tok
	st.previousReservedToken = &t
}
