// Package command implements the textscrub subcommands. Each command parses
// its own flags, loads optional HCL configuration, and reports its outcome
// through the semantic return codes in return_codes.go.
package command

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	home "github.com/mitchellh/go-homedir"

	"github.com/textscrub/textscrub/censor"
	"github.com/textscrub/textscrub/hcl"
)

// configureLogging takes a logger name, sets the default configuration, grabs the LOG_LEVEL from our ENV vars, and
// returns a configured and usable logger.
func configureLogging(loggerName string) hclog.Logger {
	// Create logger, set default and log level
	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  loggerName,
		Color: hclog.AutoColor,
	})
	hclog.SetDefault(appLogger)
	if logStr := os.Getenv("LOG_LEVEL"); logStr != "" {
		if level := hclog.LevelFromString(logStr); level != hclog.NoLevel {
			appLogger.SetLevel(level)
			appLogger.Debug("Logger configuration change", "LOG_LEVEL", hclog.Fmt("%s", logStr))
		}
	}
	return hclog.Default()
}

// loadConfig reads the HCL file at path, registers its vulgar blocks with the
// process dictionary, and returns the default censor request the file
// declares.
func loadConfig(l hclog.Logger, path string) (censor.Request, error) {
	expanded, err := home.Expand(path)
	if err != nil {
		return censor.Request{}, fmt.Errorf("expanding config path, path=%s: %w", path, err)
	}

	cfg, err := hcl.Parse(expanded)
	if err != nil {
		return censor.Request{}, err
	}
	l.Debug("HCL config is", "hcl", cfg)

	if err := hcl.Apply(cfg); err != nil {
		return censor.Request{}, err
	}
	return cfg.Request()
}
