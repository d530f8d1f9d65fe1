package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	UploadsBaseURL string `json:"uploads_base_url"`
	SessionDBPath  string `json:"session_db_path"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c/-config in args. Without such a flag it does nothing.
//
// Panics on read or unmarshal errors; a broken config file is a startup error.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.UploadsBaseURL, jc.UploadsBaseURL)
	overlay(&cfg.SessionDBPath, jc.SessionDBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
