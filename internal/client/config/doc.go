// Package config loads runtime configuration for the store admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL (default http://localhost:5000)
//	-u string   uploads base URL (default http://localhost:5000/uploads)
//	-d string   session database file (default session.db)
//	-l string   log level (default warn)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "uploads_base_url": "http://localhost:5000/uploads",
//	  "session_db_path": "session.db",
//	  "log_level": "info"
//	}
//
// Empty JSON values keep the previous value.
package config
