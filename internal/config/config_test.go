package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"state_file": "/tmp/state.json",
		"sources": ["himalayas"],
		"source_timeout_sec": 5,
		"search_limit": 25,
		"server_port": 9090,
		"debug": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/state.json", cfg.StateFile)
	assert.Equal(t, []string{"himalayas"}, cfg.Sources)
	assert.Equal(t, 5, cfg.SourceTimeoutSec)
	assert.Equal(t, 25, cfg.SearchLimit)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid sources", Config{Sources: []string{"himalayas", "remoteok"}}, false},
		{"unknown source", Config{Sources: []string{"linkedin"}}, true},
		{"negative timeout", Config{SourceTimeoutSec: -1}, true},
		{"negative limit", Config{SearchLimit: -5}, true},
		{"port too large", Config{ServerPort: 70000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{SearchLimit: 10}
	merged := cfg.MergeWithDefaults(Config{
		StateFile:   "/custom/state.json",
		SearchLimit: 99,
		ServerPort:  3000,
	})

	assert.Equal(t, "/custom/state.json", merged.StateFile)
	// Explicit value wins over the default.
	assert.Equal(t, 10, merged.SearchLimit)
	assert.Equal(t, 3000, merged.ServerPort)
	assert.Equal(t, []string{"himalayas", "remoteok"}, merged.Sources)
}

func TestMergeWithDefaults_HardDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultStateFile, merged.StateFile)
	assert.Equal(t, DefaultSearchLimit, merged.SearchLimit)
	assert.Equal(t, DefaultServerPort, merged.ServerPort)
	assert.Equal(t, 10, merged.SourceTimeoutSec)
}

func TestSourceTimeout(t *testing.T) {
	assert.Equal(t, DefaultSourceTimeout, (&Config{}).SourceTimeout())
	assert.Equal(t, 5*time.Second, (&Config{SourceTimeoutSec: 5}).SourceTimeout())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JOBFLOW_STATE_FILE", "/env/state.json")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, "/env/state.json", cfg.StateFile)

	// Explicit values are not overwritten.
	cfg = &Config{DatabaseURL: "postgres://file"}
	cfg.FromEnv()
	assert.Equal(t, "postgres://file", cfg.DatabaseURL)
}
