package config

import (
	"errors"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig is the optional TOML application configuration: bot-wide
// defaults that guild admins can override per guild via commands
type AppConfig struct {
	// DefaultPrefix is the text-command prefix for guilds that have not
	// set their own
	DefaultPrefix string `toml:"default_prefix"`
	// Activity is the "listening to ..." presence text
	Activity string `toml:"activity"`
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if strings.ContainsAny(a.DefaultPrefix, " \t\n") {
		return goerr.Wrap(ErrInvalidConfig, "default_prefix must not contain whitespace",
			goerr.V("default_prefix", a.DefaultPrefix))
	}
	return nil
}

// App holds the CLI flag for the application config file
type App struct {
	path string
}

func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML application config file",
			Sources:     cli.EnvVars("SIDEBAR_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Configure loads and validates the config file. Without a path it
// returns an empty config; callers apply their own defaults.
func (x *App) Configure() (*AppConfig, error) {
	var cfg AppConfig
	if x.path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(x.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "cannot read config", goerr.V("path", x.path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", x.path))
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", x.path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("path", x.path))
	}

	return &cfg, nil
}
