package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.HistoryBackend)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ShowLineNumbers)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.Empty(t, cfg.HistoryPath)
	require.NoError(t, cfg.Validate())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"TYPEOUT_RECENT_BACKEND": " SQLite ",
		"TYPEOUT_RECENT_PATH":    "/tmp/r.db",
		"TYPEOUT_RECENT_LIMIT":   "3",
		"TYPEOUT_START_DIR":      "/src",
		"TYPEOUT_LOG_FILE":       "/tmp/typeout.log",
		"TYPEOUT_LOG_LEVEL":      "debug",
		"TYPEOUT_LINE_NUMBERS":   "false",
		"TYPEOUT_TAB_WIDTH":      "8",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		HistoryBackend:  BackendSQLite,
		HistoryPath:     "/tmp/r.db",
		HistoryLimit:    3,
		StartDir:        "/src",
		LogFile:         "/tmp/typeout.log",
		LogLevel:        "debug",
		ShowLineNumbers: false,
		TabWidth:        8,
	}, cfg)
}

func TestLoadFrom_BadValue(t *testing.T) {
	_, err := LoadFrom(map[string]string{"TYPEOUT_RECENT_LIMIT": "ten"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	base, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	bad := base
	bad.HistoryBackend = "redis"
	assert.ErrorContains(t, bad.Validate(), "unknown history backend")

	bad = base
	bad.HistoryLimit = 0
	assert.ErrorContains(t, bad.Validate(), "history limit")

	bad = base
	bad.TabWidth = -1
	assert.ErrorContains(t, bad.Validate(), "tab width")
}

func TestResolveHistoryPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := Config{HistoryBackend: BackendSQLite}
	got, err := cfg.ResolveHistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "recent.db", filepath.Base(got.HistoryPath))
	assert.Equal(t, "typeout", filepath.Base(filepath.Dir(got.HistoryPath)))

	cfg = Config{HistoryBackend: BackendJSON, HistoryPath: "/explicit.json"}
	got, err = cfg.ResolveHistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/explicit.json", got.HistoryPath)

	cfg = Config{HistoryBackend: BackendMemory}
	got, err = cfg.ResolveHistoryPath()
	require.NoError(t, err)
	assert.Empty(t, got.HistoryPath)
}
