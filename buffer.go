package sqlformat

import "strings"

// outputBuffer accumulates formatted SQL. Unlike strings.Builder it
// supports trimming trailing spaces, which several dispatch rules need
// (e.g. the comma, dot and semicolon rules trim whatever trailing space the
// previous token's emission left before deciding what to write next).
type outputBuffer struct {
	buf []byte
}

func (b *outputBuffer) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

func (b *outputBuffer) TrimTrailingSpaces() {
	n := len(b.buf)
	for n > 0 && b.buf[n-1] == ' ' {
		n--
	}
	b.buf = b.buf[:n]
}

func (b *outputBuffer) TrimTrailingWhitespace() {
	n := len(b.buf)
	for n > 0 && (b.buf[n-1] == ' ' || b.buf[n-1] == '\n' || b.buf[n-1] == '\t' || b.buf[n-1] == '\r') {
		n--
	}
	b.buf = b.buf[:n]
}

func (b *outputBuffer) EndsWithNewline() bool {
	return len(b.buf) > 0 && b.buf[len(b.buf)-1] == '\n'
}

func (b *outputBuffer) EndsWithSpace() bool {
	return len(b.buf) > 0 && b.buf[len(b.buf)-1] == ' '
}

func (b *outputBuffer) Empty() bool {
	return len(b.buf) == 0
}

// EnsureSpace appends a single space unless the buffer is empty or
// already ends in whitespace.
func (b *outputBuffer) EnsureSpace() {
	if b.Empty() || b.EndsWithSpace() || b.EndsWithNewline() {
		return
	}
	b.buf = append(b.buf, ' ')
}

// AddNewline trims trailing spaces, appends a newline unless the buffer
// already ends with one, then appends indent. Idempotent: calling it
// twice in a row leaves the same suffix both times.
func (b *outputBuffer) AddNewline(indent string) {
	b.TrimTrailingSpaces()
	if !b.EndsWithNewline() {
		b.buf = append(b.buf, '\n')
	}
	b.buf = append(b.buf, indent...)
}

func (b *outputBuffer) String() string {
	return string(b.buf)
}

// CurrentLineLength returns the byte length of the buffer's last line,
// consulted by the newline=lineWidth comma rule.
func (b *outputBuffer) CurrentLineLength() int {
	n := len(b.buf)
	i := n
	for i > 0 && b.buf[i-1] != '\n' {
		i--
	}
	return n - i
}

// equalizeWhitespace collapses any internal run of whitespace in a
// multi-word keyword (e.g. "LEFT  JOIN", "LEFT\nJOIN") to a single space.
func equalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
