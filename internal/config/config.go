// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Default values applied when neither config file, environment, nor flags
// set a field.
const (
	DefaultStateFile     = "jobflow.state.json"
	DefaultServerPort    = 8080
	DefaultSearchLimit   = 50
	DefaultSourceTimeout = 10 * time.Second
)

// Config is the jobflow configuration, loadable from a JSON file. All fields
// are optional; missing values use defaults or CLI flags.
type Config struct {
	// Persistence
	StateFile   string `json:"state_file,omitempty"`   // Path to the JSON state file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; overrides the file store when set

	// Discovery
	Sources          []string `json:"sources,omitempty"`            // Enabled job sources (himalayas, remoteok)
	SourceTimeoutSec int      `json:"source_timeout_sec,omitempty"` // Per-source search timeout in seconds
	SearchLimit      int      `json:"search_limit,omitempty"`       // Default result cap for searches
	UseBrowser       bool     `json:"use_browser,omitempty"`        // Headless browser fallback for SPA job pages

	// Search defaults
	Query    string `json:"query,omitempty"`    // Default search query
	Location string `json:"location,omitempty"` // Default search location

	// Server
	ServerPort int `json:"server_port,omitempty"` // HTTP server port

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON log lines instead of console
	Debug    bool `json:"debug,omitempty"`     // Enable debug logging
}

// knownSources are the source names accepted in the Sources list.
var knownSources = map[string]bool{
	"himalayas": true,
	"remoteok":  true,
}

// LoadEnv loads a .env file if one exists next to the working directory.
// Missing files are not an error; a malformed file is.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables. LoadEnv should run
// first so .env values are visible.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.StateFile == "" {
		c.StateFile = os.Getenv("JOBFLOW_STATE_FILE")
	}
}

// Validate checks that the configuration has usable values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.SourceTimeoutSec < 0 {
		return fmt.Errorf("config error: 'source_timeout_sec' must be non-negative")
	}
	if c.SearchLimit < 0 {
		return fmt.Errorf("config error: 'search_limit' must be non-negative")
	}
	if c.ServerPort < 0 || c.ServerPort > 65535 {
		return fmt.Errorf("config error: 'server_port' must be in [0, 65535]")
	}
	for _, source := range c.Sources {
		if !knownSources[source] {
			return fmt.Errorf("config error: unknown source %q", source)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, and hard defaults applied where both are empty.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StateFile == "" {
		result.StateFile = defaults.StateFile
	}
	if result.StateFile == "" {
		result.StateFile = DefaultStateFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.Sources) == 0 {
		result.Sources = defaults.Sources
	}
	if len(result.Sources) == 0 {
		result.Sources = []string{"himalayas", "remoteok"}
	}
	if result.Query == "" {
		result.Query = defaults.Query
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}

	if result.SourceTimeoutSec == 0 {
		result.SourceTimeoutSec = defaults.SourceTimeoutSec
	}
	if result.SourceTimeoutSec == 0 {
		result.SourceTimeoutSec = int(DefaultSourceTimeout / time.Second)
	}
	if result.SearchLimit == 0 {
		result.SearchLimit = defaults.SearchLimit
	}
	if result.SearchLimit == 0 {
		result.SearchLimit = DefaultSearchLimit
	}
	if result.ServerPort == 0 {
		result.ServerPort = defaults.ServerPort
	}
	if result.ServerPort == 0 {
		result.ServerPort = DefaultServerPort
	}

	// Bool fields cannot distinguish unset from false, so CLI flags always
	// win for those.

	return result
}

// SourceTimeout returns the per-source timeout as a duration.
func (c *Config) SourceTimeout() time.Duration {
	if c.SourceTimeoutSec <= 0 {
		return DefaultSourceTimeout
	}
	return time.Duration(c.SourceTimeoutSec) * time.Second
}
