// Package config loads optional application configuration from a YAML
// file and KANJIDRILL_* environment variables. Everything has a working
// default; a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds launch-time configuration. Study settings (readings,
// choice count, multi-typing) live in the pref store instead, because
// they are mutated from inside the app.
type Config struct {
	// DBPath overrides the SQLite database location.
	DBPath string `mapstructure:"db_path"`

	// CatalogPath points at a catalog override JSON to import on start.
	CatalogPath string `mapstructure:"catalog_path"`

	// InstantAdvance auto-advances after a correct multiple-choice
	// answer.
	InstantAdvance bool `mapstructure:"instant_advance"`
}

// Load reads the config file from $XDG_CONFIG_HOME/kanjidrill (or
// ~/.config/kanjidrill), applies env overrides and returns the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("KANJIDRILL")
	v.AutomaticEnv()

	v.SetDefault("db_path", "")
	v.SetDefault("catalog_path", "")
	v.SetDefault("instant_advance", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "kanjidrill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kanjidrill"), nil
}
