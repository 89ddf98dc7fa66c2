package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sidebar.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestAppConfigure(t *testing.T) {
	t.Run("no path yields an empty config", func(t *testing.T) {
		var app App
		cfg, err := app.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.DefaultPrefix).Equal("")
		gt.Value(t, cfg.Activity).Equal("")
	})

	t.Run("loads TOML fields", func(t *testing.T) {
		app := App{path: writeConfigFile(t, "default_prefix = \"?\"\nactivity = \"your DMs\"\n")}
		cfg, err := app.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.DefaultPrefix).Equal("?")
		gt.Value(t, cfg.Activity).Equal("your DMs")
	})

	t.Run("missing file", func(t *testing.T) {
		app := App{path: filepath.Join(t.TempDir(), "absent.toml")}
		_, err := app.Configure()
		gt.Bool(t, errors.Is(err, ErrConfigNotFound)).True()
	})

	t.Run("malformed TOML", func(t *testing.T) {
		app := App{path: writeConfigFile(t, "default_prefix = [broken")}
		_, err := app.Configure()
		gt.Error(t, err)
	})

	t.Run("whitespace in prefix is invalid", func(t *testing.T) {
		app := App{path: writeConfigFile(t, "default_prefix = \"a b\"\n")}
		_, err := app.Configure()
		gt.Bool(t, errors.Is(err, ErrInvalidConfig)).True()
	})
}

func TestAppConfigValidate(t *testing.T) {
	valid := AppConfig{DefaultPrefix: "!", Activity: "/help"}
	gt.NoError(t, valid.Validate())

	empty := AppConfig{}
	gt.NoError(t, empty.Validate())

	invalid := AppConfig{DefaultPrefix: "a\tb"}
	gt.Bool(t, errors.Is(invalid.Validate(), ErrInvalidConfig)).True()
}
