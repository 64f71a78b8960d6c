package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".mindvault", "mindvault.db"), cfg.DB.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 10, cfg.List.Limit)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
db:
  path: /tmp/notes.db
log:
  level: debug
  format: json
list:
  limit: 25
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 25, cfg.List.Limit)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "list:\n  limit: 3\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.List.Limit)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NotEmpty(t, cfg.DB.Path)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "db:\n  path: /from/file.db\nlog:\n  level: info\n")
	t.Setenv("MINDVAULT_DB_PATH", "/from/env.db")
	t.Setenv("MINDVAULT_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DB.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestTildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "db:\n  path: ~/vault/x.db\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "vault", "x.db"), cfg.DB.Path)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad format", "log:\n  format: xml\n"},
		{"zero limit", "list:\n  limit: 0\n"},
		{"broken yaml", "db: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.path", envKey("MINDVAULT_DB_PATH"))
	assert.Equal(t, "list.limit", envKey("MINDVAULT_LIST_LIMIT"))
	assert.Equal(t, "log.file", envKey("MINDVAULT_LOG_FILE"))
}
