package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the app-level settings read from the optional config
// file and SPELLBOOK_* environment overrides.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
}

// DatabasePath returns the snapshot database location inside DataDir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "spellbook.db")
}

// Load reads config.yaml from the data directory if present. A missing
// file is not an error; defaults and env vars still apply.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	dataDir := filepath.Join(home, ".spellbook")

	v := viper.New()
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("log_level", "info")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.SetEnvPrefix("SPELLBOOK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
