package sqlformat

import (
	"strings"
	"testing"
)

// TestFormatIdempotent checks the universal property that re-formatting an
// already-formatted query leaves it unchanged.
func TestFormatIdempotent(t *testing.T) {
	queries := []string{
		"SELECT a, b FROM t WHERE x = 1 AND y = 2 ORDER BY a",
		"SELECT COUNT(*) FROM t",
		"INSERT INTO t (a, b) VALUES (1, 2)",
		"UPDATE t SET a = 1 WHERE b = 2",
	}
	for _, q := range queries {
		first := mustFormat(t, q, nil)
		second := mustFormat(t, first, nil)
		if first != second {
			t.Errorf("Format is not idempotent for %q:\nfirst:  %q\nsecond: %q", q, first, second)
		}
	}
}

// TestFormatPreservesContentTokens checks that every identifier/number/
// string literal survives formatting, even though whitespace changes.
func TestFormatPreservesContentTokens(t *testing.T) {
	out := mustFormat(t, "select alpha, beta from gamma where delta = 42", nil)
	for _, want := range []string{"alpha", "beta", "gamma", "delta", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted output %q lost token %q", out, want)
		}
	}
}

func TestFormatOutputHasNoLeadingOrTrailingWhitespace(t *testing.T) {
	out := mustFormat(t, "  select   a   from   t  ", nil)
	if out != strings.TrimSpace(out) {
		t.Errorf("output carries leading/trailing whitespace: %q", out)
	}
}

func TestFormatCommentOnlyInput(t *testing.T) {
	out := mustFormat(t, "-- just a comment", nil)
	if !strings.Contains(out, "just a comment") {
		t.Errorf("expected the comment text preserved, got %q", out)
	}
}

func TestFormatLimitCommaDoesNotBreakLine(t *testing.T) {
	out := mustFormat(t, "SELECT a FROM t LIMIT 10, 20", nil)
	if strings.Contains(out, "10,\n") {
		t.Errorf("expected LIMIT's comma-separated offset/count to stay on one line, got %q", out)
	}
	if !strings.Contains(out, "10, 20") {
		t.Errorf("expected LIMIT offset and count rendered together, got %q", out)
	}
}

func TestFormatNeverProducesConsecutiveBlankLines(t *testing.T) {
	out := mustFormat(t, "SELECT a FROM t WHERE x = 1 AND y = 2 AND z = 3", nil)
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("unexpected run of blank lines in %q", out)
	}
}

func TestFormatMultipleStatementsSeparatedByConfiguredBlankLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LinesBetweenQueries = 2
	out := mustFormat(t, "SELECT a FROM t; SELECT b FROM u;", cfg)
	if !strings.Contains(out, ";\n\n") {
		t.Errorf("expected blank lines between statements, got %q", out)
	}
}

func TestFormatIndentNeverGoesNegativeAcrossNestedParens(t *testing.T) {
	out := mustFormat(t, "SELECT a FROM t WHERE x IN (SELECT y FROM u WHERE z IN (SELECT w FROM v))", nil)
	if out == "" {
		t.Fatal("expected non-empty output for a deeply nested query")
	}
}

func TestFormatAcrossAllDialectsProducesOutput(t *testing.T) {
	for _, d := range Dialects {
		out, err := Format("SELECT a FROM t WHERE b = 1", &Config{Language: d})
		if err != nil {
			t.Errorf("dialect %s: unexpected error: %v", d, err)
			continue
		}
		if !strings.Contains(out, "SELECT") {
			t.Errorf("dialect %s: expected SELECT in output, got %q", d, out)
		}
	}
}
