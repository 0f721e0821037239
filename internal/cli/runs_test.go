package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/harcmp/internal/record"
	"github.com/roach88/harcmp/internal/store"
)

func execRuns(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunsCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunsEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := execRuns(t, "text", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "no runs stored")
}

func TestRunsListsStoredRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	st, err := store.Open(db)
	require.NoError(t, err)
	recs := record.NormalizeAll([]record.RawEntry{
		{Method: "GET", URL: "https://example.com/users", Status: 200},
	})
	runID, err := st.SaveRun(context.Background(), "baseline", "/tmp/a.har", recs)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execRuns(t, "text", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, runID)
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "1 records")
	assert.Contains(t, out, "/tmp/a.har")
}

func TestRunsJSONOutput(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	st, err := store.Open(db)
	require.NoError(t, err)
	_, err = st.SaveRun(context.Background(), "candidate", "/tmp/b.har", nil)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execRuns(t, "json", "--db", db)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	runs := resp.Data.([]any)
	require.Len(t, runs, 1)
	run := runs[0].(map[string]any)
	assert.Equal(t, "candidate", run["label"])
	assert.Equal(t, float64(0), run["record_count"])
}

func TestRunsUnusableDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "no-such-dir", "runs.db")

	out, err := execRuns(t, "text", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "(E_STORE)")
}
