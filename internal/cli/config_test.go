package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "output: out.html\ndb: runs.db\ntime_threshold_ms: 250\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "out.html", cfg.Output)
	assert.Equal(t, "runs.db", cfg.DB)
	assert.Equal(t, 250.0, cfg.TimeThresholdMs)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "db: only.db\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "only.db", cfg.DB)
	assert.Empty(t, cfg.Output)
	assert.Zero(t, cfg.TimeThresholdMs)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "output: out.html\ntreshold: 5\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "treshold")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
