package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := NewRootCmd(buildInfo{version: "test", commit: "abc123", date: "2026-01-01"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return buf.String(), err
}

func TestRootCommandListsSubcommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "format")
	assert.Contains(t, out, "dialects")
	assert.Contains(t, out, "version")
}

func TestDialectsCommandListsAllDialects(t *testing.T) {
	out, err := execute(t, "dialects")
	require.NoError(t, err)
	for _, want := range []string{"sql", "mysql", "postgresql", "tsql", "bigquery"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "2026-01-01")
}
