package config

import "os"

// Config holds runtime settings for the store admin CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the REST backend, without the /api suffix.
//   - UploadsBaseURL: base URL that image and avatar file names are resolved against.
//   - SessionDBPath: SQLite file holding the persisted session token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	UploadsBaseURL string
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with defaults matching a locally running backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.UploadsBaseURL = "http://localhost:5000/uploads"
	c.SessionDBPath = "session.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
