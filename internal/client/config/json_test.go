package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":     "http://www.example:9000",
		"uploads_base_url": "http://www.example:9000/uploads",
		"log_level":        "info",
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, "http://www.example:9000/uploads", cfg.UploadsBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "session.db", cfg.SessionDBPath, "absent keys keep defaults")
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://defaults:1234"}
		parseJson(cfg, nil)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "absent.json")}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", bad}) })
	})
}
