package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/akshara/internal/logging"
)

// Config holds application configuration.
type Config struct {
	Panel PanelConfig `mapstructure:"panel"`
	Log   LogConfig   `mapstructure:"log"`
}

// PanelConfig holds key panel settings.
type PanelConfig struct {
	Layout        string `mapstructure:"layout"`
	LayoutsDir    string `mapstructure:"layouts_dir"`
	ShowMatraBase bool   `mapstructure:"show_matra_base"`
	ShowHelp      bool   `mapstructure:"show_help"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`
}

// Dir returns the configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "akshara")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "akshara")
}

func stateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "akshara")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "akshara")
}

// Load reads configuration from file and env. Env var overrides use prefix AKSHARA_.
//
// path selects the config file explicitly; when empty AKSHARA_CONFIG is
// consulted, then config.toml in Dir. Only an explicitly named file must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("panel.layout", "devanagari")
	v.SetDefault("panel.layouts_dir", filepath.Join(Dir(), "layouts"))
	v.SetDefault("panel.show_matra_base", true)
	v.SetDefault("panel.show_help", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "discard")
	v.SetDefault("log.file", filepath.Join(stateDir(), "akshara.log"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("AKSHARA_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AKSHARA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Logging converts the log section into a logger configuration.
func (c LogConfig) Logging() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("log.level: %w", err)
	}
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return logging.Config{}, fmt.Errorf("log.format: %w", err)
	}
	return logging.Config{
		Level:     level,
		Format:    format,
		Output:    c.Output,
		FilePath:  c.File,
		Component: "akshara",
	}, nil
}
