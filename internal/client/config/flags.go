package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   API base URL
//	-u string   uploads base URL
//	-d string   session database file
//	-l string   log level
//
// Only these flags are looked at (see flagx.FilterArgs), so -c/-config and
// anything else on the command line is left alone.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-u", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.UploadsBaseURL, "u", cfg.UploadsBaseURL, "uploads base URL")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
