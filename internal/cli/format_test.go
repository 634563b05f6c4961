package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommandInline(t *testing.T) {
	out, err := execute(t, "format", "--inline", "select a,b from t")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "FROM")
}

func TestFormatCommandReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("select a from t"), 0o644))

	out, err := execute(t, "format", path)
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT")
}

func TestFormatCommandWritesToOutFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.sql")

	_, err := execute(t, "format", "--inline", "select a from t", "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SELECT")
}

func TestFormatCommandRejectsUnknownDialect(t *testing.T) {
	_, err := execute(t, "format", "--inline", "select a from t", "--language", "not-a-real-dialect")
	assert.Error(t, err)
}

func TestFormatCommandAppliesUppercaseFlag(t *testing.T) {
	out, err := execute(t, "format", "--inline", "select a from t", "--uppercase=false")
	require.NoError(t, err)
	assert.Contains(t, out, "select")
	assert.NotContains(t, out, "SELECT")
}

func TestFormatCommandLoadsPositionalParamsFile(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(paramsPath, []byte(`["'alice'"]`), 0o644))

	out, err := execute(t, "format", "--inline", "select a from t where name = ?", "--params-file", paramsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "'alice'")
}

func TestFormatCommandLoadsNamedParamsFile(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(paramsPath, []byte(`{"name": "'alice'"}`), 0o644))

	out, err := execute(t, "format", "--inline", "select a from t where name = :name", "--params-file", paramsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "'alice'")
}

func TestFormatCommandInlineRequiresArgument(t *testing.T) {
	_, err := execute(t, "format", "--inline")
	assert.Error(t, err)
}

func TestFormatCommandReadsFromStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, werr := w.WriteString("select a from t")
	require.NoError(t, werr)
	require.NoError(t, w.Close())

	original := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = original }()

	out, err := execute(t, "format", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT")
}
